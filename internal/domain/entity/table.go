package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DiningTable is a physical table in the restaurant. An occupied table
// holds the receipt number of the order it is serving; committing that
// settlement frees it.
type DiningTable struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TableNo          int              `gorm:"uniqueIndex;not null" json:"table_no"`
	SeatingCapacity  int              `gorm:"not null" json:"seating_capacity"`
	Status           enum.TableStatus `gorm:"default:0" json:"status"`
	CurrentReceiptNo *string          `gorm:"size:100" json:"current_receipt_no,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *DiningTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiningTable model
func (DiningTable) TableName() string {
	return "dining_tables"
}
