package entity

import (
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/pkg/money"
)

// CartLine is a single priced line item submitted for settlement.
// Lines are immutable once handed to the settlement engine.
type CartLine struct {
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	UnitPrice money.Money `json:"unit_price"`
	Quantity  int         `json:"quantity"`
}

// LineTotal returns unit price times quantity. Exact in cents.
func (l CartLine) LineTotal() money.Money {
	return l.UnitPrice.MulInt(l.Quantity)
}

// Totals is the priced breakdown of a cart. Derived by the pricing engine,
// never persisted independently of a Sale.
type Totals struct {
	SubTotal     money.Money `json:"sub_total"`
	Discount     money.Money `json:"discount"`
	Tax          money.Money `json:"tax"`
	TotalPayable money.Money `json:"total_payable"`
	LineCount    int         `json:"line_count"`
}

// PaymentOutcome is the result of matching a tendered amount against a
// total. Exactly one status per attempt; only settled outcomes are ever
// written into a Sale.
type PaymentOutcome struct {
	Status       enum.OutcomeStatus `json:"status"`
	TotalDue     money.Money        `json:"total_due"`
	Tendered     money.Money        `json:"tendered"`
	Change       money.Money        `json:"change"`
	RemainingDue money.Money        `json:"remaining_due"`
}

// SettledOutcome builds the outcome for a fully covered total.
func SettledOutcome(totalDue, tendered money.Money) PaymentOutcome {
	return PaymentOutcome{
		Status:   enum.OutcomeSettled,
		TotalDue: totalDue,
		Tendered: tendered,
		Change:   tendered.Sub(totalDue),
	}
}

// InsufficientFundsOutcome builds the outcome for a shortfall.
func InsufficientFundsOutcome(totalDue, tendered money.Money) PaymentOutcome {
	return PaymentOutcome{
		Status:       enum.OutcomeInsufficientFunds,
		TotalDue:     totalDue,
		Tendered:     tendered,
		RemainingDue: totalDue.Sub(tendered),
	}
}

// StockWarningKind classifies a stock side-effect failure reported after a
// sale has already been committed.
type StockWarningKind string

const (
	StockWarningUnknownItemCode        StockWarningKind = "unknown_item_code"
	StockWarningInsufficientStock      StockWarningKind = "insufficient_stock"
	StockWarningUnknownIngredient      StockWarningKind = "unknown_ingredient"
	StockWarningInsufficientIngredient StockWarningKind = "insufficient_ingredient_stock"
	StockWarningLedgerFailure          StockWarningKind = "ledger_failure"
)

// StockWarning is a non-fatal error attached to a committed settlement:
// the sale stands, the ledger needs manual reconciliation.
type StockWarning struct {
	Kind    StockWarningKind `json:"kind"`
	Ref     string           `json:"ref"` // item code or ingredient name
	Message string           `json:"message"`
}
