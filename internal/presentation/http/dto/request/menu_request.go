package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/pkg/money"
)

// RequirementRequest is one bill-of-materials line on a recipe item
type RequirementRequest struct {
	IngredientName  string          `json:"ingredient_name" binding:"required,min=1,max=255"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	Code         string               `json:"code" binding:"omitempty,max=100"`
	Name         string               `json:"name" binding:"required,min=2,max=255"`
	Price        money.Money          `json:"price"`
	CategoryID   *uuid.UUID           `json:"category_id"`
	Requirements []RequirementRequest `json:"requirements" binding:"omitempty,dive"`
}

// UpdateMenuItemRequest represents a menu item update request
type UpdateMenuItemRequest struct {
	Name         *string               `json:"name" binding:"omitempty,min=2,max=255"`
	Price        *money.Money          `json:"price"`
	CategoryID   *uuid.UUID            `json:"category_id"`
	Requirements *[]RequirementRequest `json:"requirements" binding:"omitempty,dive"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}
