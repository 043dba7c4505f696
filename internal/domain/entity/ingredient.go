package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IngredientStock is the ingredient ledger row consumed by recipe sales.
// Names are unique case-insensitively; quantities are decimal because
// recipes deduct fractional units (0.5 lettuce per serving). LastUpdated is
// bumped on every successful deduction.
type IngredientStock struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);default:0" json:"quantity"`
	Unit        string          `gorm:"size:50" json:"unit,omitempty"`
	LastUpdated time.Time       `json:"last_updated"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ingredient stock row
func (i *IngredientStock) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IngredientStock model
func (IngredientStock) TableName() string {
	return "ingredient_stocks"
}
