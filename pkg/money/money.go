// Package money provides a fixed-point currency type stored as an integer
// number of minor units (cents). All rate arithmetic goes through
// shopspring/decimal and rounds to 2 fractional digits half-up after each
// step, so repeated operations never accumulate binary-float drift.
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount of currency in minor units (cents).
// The zero value is zero currency.
type Money int64

// Zero is the zero amount.
const Zero Money = 0

var centsFactor = decimal.NewFromInt(100)

// FromCents builds a Money from an integer number of cents.
func FromCents(cents int64) Money {
	return Money(cents)
}

// FromDecimal converts a decimal amount of major units into Money,
// rounding to 2 fractional digits half-up.
func FromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(2).Mul(centsFactor).IntPart())
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Neg returns -m.
func (m Money) Neg() Money {
	return -m
}

// MulInt returns the amount multiplied by an integer quantity.
// Exact: a 2dp price times an integer count needs no rounding.
func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// MulRate multiplies the amount by a fractional rate (e.g. 0.16 for 16% tax)
// and rounds the result to the cent, half-up.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(rate))
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	default:
		return 0
	}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// String renders the amount with exactly 2 fractional digits, e.g. "194.40".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON renders the amount as a plain 2dp decimal number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a decimal number (or quoted decimal string) and
// rounds it to the cent half-up.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("money: invalid amount %s: %w", data, err)
	}
	*m = FromDecimal(d)
	return nil
}

// Value implements driver.Valuer; amounts are stored as integer cents.
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		*m = 0
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = Money(v)
	case int:
		*m = Money(v)
	default:
		return fmt.Errorf("money: cannot scan %T into Money", value)
	}
	return nil
}
