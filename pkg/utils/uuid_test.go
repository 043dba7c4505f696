package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReceiptNo(t *testing.T) {
	at := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	receiptNo := GenerateReceiptNo(at)
	assert.Regexp(t, regexp.MustCompile(`^R20250315183000-[0-9A-F]{8}$`), receiptNo)

	// The random suffix keeps two receipts in the same second distinct.
	assert.NotEqual(t, receiptNo, GenerateReceiptNo(at))
}

func TestGenerateItemCode(t *testing.T) {
	code := GenerateItemCode()
	assert.Regexp(t, regexp.MustCompile(`^ITM-[0-9A-F]{8}$`), code)
	assert.NotEqual(t, code, GenerateItemCode())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mains", "mains"},
		{"Hot Drinks", "hot-drinks"},
		{"  Spicy & Sour  ", "spicy-sour"},
		{"Crème Brûlée", "crme-brle"},
		{"already-slugged", "already-slugged"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
