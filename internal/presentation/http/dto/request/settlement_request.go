package request

import (
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/pkg/money"
)

// CartLineRequest is one submitted cart line
type CartLineRequest struct {
	Code      string      `json:"code" binding:"required,max=100"`
	Name      string      `json:"name" binding:"required,max=255"`
	UnitPrice money.Money `json:"unit_price"`
	Quantity  int         `json:"quantity" binding:"required"`
}

// SettleOrderRequest represents a settlement attempt
type SettleOrderRequest struct {
	Lines         []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Tendered      money.Money       `json:"tendered"`
	DiscountRate  *decimal.Decimal  `json:"discount_rate"`
	TaxRate       *decimal.Decimal  `json:"tax_rate"`
	TableNo       *int              `json:"table_no"`
}

// QuoteRequest prices a cart without settling it
type QuoteRequest struct {
	Lines        []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
	DiscountRate *decimal.Decimal  `json:"discount_rate"`
	TaxRate      *decimal.Decimal  `json:"tax_rate"`
}
