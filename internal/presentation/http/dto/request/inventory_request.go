package request

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/pkg/money"
)

// CreateItemRequest represents an inventory item creation request
type CreateItemRequest struct {
	Code           string      `json:"code" binding:"omitempty,max=100"`
	Name           string      `json:"name" binding:"required,min=2,max=255"`
	Quantity       int         `json:"quantity" binding:"min=0"`
	QuantityAlert  int         `json:"quantity_alert" binding:"min=0"`
	BuyingPrice    money.Money `json:"buying_price"`
	SellingPrice   money.Money `json:"selling_price"`
	ExpirationDate *time.Time  `json:"expiration_date"`
	Notes          *string     `json:"notes"`
}

// UpdateItemRequest represents an inventory item update request
type UpdateItemRequest struct {
	Name           *string      `json:"name" binding:"omitempty,min=2,max=255"`
	Quantity       *int         `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert  *int         `json:"quantity_alert" binding:"omitempty,min=0"`
	BuyingPrice    *money.Money `json:"buying_price"`
	SellingPrice   *money.Money `json:"selling_price"`
	ExpirationDate *time.Time   `json:"expiration_date"`
	Notes          *string      `json:"notes"`
}

// RestockRequest increments stock for a batch of item codes
type RestockRequest struct {
	Items map[string]int `json:"items" binding:"required,min=1"`
}

// UpsertIngredientRequest sets an ingredient's absolute stock level
type UpsertIngredientRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=255"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit" binding:"omitempty,max=50"`
}
