package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/money"
)

var one = decimal.NewFromInt(1)

// PricingEngine derives a cart's payable breakdown. It is pure: no storage,
// no clock, the same cart and rates always price the same way.
//
// The pipeline is subtotal, minus discount, plus tax on the discounted
// amount. Each derived figure is rounded to the cent half-up before the
// next step uses it, so the printed breakdown always adds up.
type PricingEngine struct{}

// NewPricingEngine creates a new pricing engine
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// ComputeTotals prices a cart at the given discount and tax rates.
// Rates are fractions and must lie in [0, 1]. An empty cart, a
// non-positive quantity, or a negative unit price is a validation error.
func (e *PricingEngine) ComputeTotals(lines []entity.CartLine, discountRate, taxRate decimal.Decimal) (entity.Totals, error) {
	if len(lines) == 0 {
		return entity.Totals{}, apperror.NewUnprocessableError("Cart must contain at least one line")
	}
	if discountRate.IsNegative() || discountRate.GreaterThan(one) {
		return entity.Totals{}, apperror.NewUnprocessableError(
			fmt.Sprintf("Discount rate must be between 0 and 1, got %s", discountRate))
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(one) {
		return entity.Totals{}, apperror.NewUnprocessableError(
			fmt.Sprintf("Tax rate must be between 0 and 1, got %s", taxRate))
	}

	var subTotal money.Money
	for i, line := range lines {
		if line.Quantity <= 0 {
			return entity.Totals{}, apperror.NewUnprocessableError(
				fmt.Sprintf("Line %d: quantity must be positive, got %d", i+1, line.Quantity))
		}
		if line.UnitPrice.IsNegative() {
			return entity.Totals{}, apperror.NewUnprocessableError(
				fmt.Sprintf("Line %d: unit price must not be negative", i+1))
		}
		subTotal = subTotal.Add(line.LineTotal())
	}

	discount := subTotal.MulRate(discountRate)
	discounted := subTotal.Sub(discount)
	tax := discounted.MulRate(taxRate)
	total := discounted.Add(tax)

	return entity.Totals{
		SubTotal:     subTotal,
		Discount:     discount,
		Tax:          tax,
		TotalPayable: total,
		LineCount:    len(lines),
	}, nil
}
