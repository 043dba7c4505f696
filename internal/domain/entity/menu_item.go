package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/pkg/money"
	"gorm.io/gorm"
)

// MenuItem is a sellable catalog entry. Recipe items carry a bill of
// materials: selling one unit consumes each requirement's quantity from
// ingredient stock. The catalog is read-only to the settlement engine.
type MenuItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code       string         `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Price      money.Money    `gorm:"default:0" json:"price"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	IsRecipe   bool           `gorm:"default:false" json:"is_recipe"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category     *Category               `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Requirements []IngredientRequirement `gorm:"foreignKey:MenuItemID" json:"requirements,omitempty"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// IngredientRequirement is one line of a recipe item's bill of materials.
type IngredientRequirement struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	IngredientName  string          `gorm:"size:255;not null" json:"ingredient_name"`
	QuantityPerUnit decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity_per_unit"`
	CreatedAt       time.Time       `json:"-"`
}

// BeforeCreate generates a UUID before creating a new requirement
func (r *IngredientRequirement) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IngredientRequirement model
func (IngredientRequirement) TableName() string {
	return "ingredient_requirements"
}

// Category groups menu items for the terminal UI
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
