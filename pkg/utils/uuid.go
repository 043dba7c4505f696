package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")

	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// GenerateReceiptNo generates a receipt number: "R" + the settlement
// timestamp + a short random suffix so two settlements in the same second
// cannot collide. Callers must not assume any encoding beyond uniqueness.
func GenerateReceiptNo(at time.Time) string {
	return "R" + at.Format("20060102150405") + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateItemCode generates a unique inventory item code
func GenerateItemCode() string {
	return "ITM-" + strings.ToUpper(uuid.New().String()[:8])
}
