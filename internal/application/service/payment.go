package service

import (
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/pkg/money"
)

// PaymentStrategy settles a total against a tendered amount. Strategies are
// stateless and never touch storage; they only decide the outcome shape.
type PaymentStrategy interface {
	Method() enum.PaymentMethod
	Settle(totalDue, tendered money.Money) entity.PaymentOutcome
}

// cashStrategy settles physical cash. The tendered amount matters: a
// shortfall is an insufficient-funds outcome, an overpayment produces change.
type cashStrategy struct{}

func (cashStrategy) Method() enum.PaymentMethod { return enum.PaymentMethodCash }

func (cashStrategy) Settle(totalDue, tendered money.Money) entity.PaymentOutcome {
	if tendered.Cmp(totalDue) < 0 {
		return entity.InsufficientFundsOutcome(totalDue, tendered)
	}
	return entity.SettledOutcome(totalDue, tendered)
}

// cardStrategy settles a card authorization. The terminal authorizes exactly
// the total, so the tendered amount is ignored and change is always zero.
type cardStrategy struct{}

func (cardStrategy) Method() enum.PaymentMethod { return enum.PaymentMethodCreditCard }

func (cardStrategy) Settle(totalDue, _ money.Money) entity.PaymentOutcome {
	return entity.SettledOutcome(totalDue, totalDue)
}

// ewalletStrategy settles an e-wallet charge, same exact-amount contract as
// cards.
type ewalletStrategy struct{}

func (ewalletStrategy) Method() enum.PaymentMethod { return enum.PaymentMethodEWallet }

func (ewalletStrategy) Settle(totalDue, _ money.Money) entity.PaymentOutcome {
	return entity.SettledOutcome(totalDue, totalDue)
}

// PaymentRegistry maps payment methods to their settlement strategies.
type PaymentRegistry struct {
	strategies map[enum.PaymentMethod]PaymentStrategy
}

// NewPaymentRegistry creates a registry with the built-in strategies.
func NewPaymentRegistry() *PaymentRegistry {
	r := &PaymentRegistry{strategies: make(map[enum.PaymentMethod]PaymentStrategy)}
	r.Register(cashStrategy{})
	r.Register(cardStrategy{})
	r.Register(ewalletStrategy{})
	return r
}

// Register adds or replaces the strategy for its method.
func (r *PaymentRegistry) Register(s PaymentStrategy) {
	r.strategies[s.Method()] = s
}

// StrategyFor returns the strategy for a method, or nil if none registered.
func (r *PaymentRegistry) StrategyFor(method enum.PaymentMethod) PaymentStrategy {
	return r.strategies[method]
}
