package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/pkg/money"
	"gorm.io/gorm"
)

// InventoryItem is a merchandise stock ledger row. Quantity is only ever
// mutated through conditional decrements, so settlement can never drive it
// below zero.
type InventoryItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code           string         `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Quantity       int            `gorm:"default:0" json:"quantity"`
	QuantityAlert  int            `gorm:"default:0" json:"quantity_alert"`
	BuyingPrice    money.Money    `gorm:"default:0" json:"buying_price"`
	SellingPrice   money.Money    `gorm:"default:0" json:"selling_price"`
	ExpirationDate *time.Time     `gorm:"type:date" json:"expiration_date,omitempty"`
	Notes          *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether quantity has fallen to the alert threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.QuantityAlert
}

// IsExpired reports whether the item expired before the given date.
func (i *InventoryItem) IsExpired(asOf time.Time) bool {
	return i.ExpirationDate != nil && i.ExpirationDate.Before(asOf)
}
