// Package money represents monetary amounts with exact decimal arithmetic.
//
// Amounts are kept rounded to two minor-unit digits (cents) so that every
// comparison and every persisted value agree. Persistence uses minor units
// (Cents/FromCents); balances in the store are integers.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is an immutable monetary value with cent precision.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// FromCents converts minor units (e.g. 1234 -> 12.34).
func FromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -2)}
}

// Cents returns the amount in minor units (e.g. 12.34 -> 1234).
func (a Amount) Cents() int64 {
	return a.d.Mul(decimal.New(100, 0)).IntPart()
}

// Parse converts a user-entered decimal string into an Amount.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted.
// The value is rounded half-up to two decimal places. Signs, empty strings
// and non-positive values are rejected with ErrInvalidAmount.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, ErrInvalidAmount
	}

	a := Amount{d: d.Round(2)}
	if !a.IsPositive() {
		return Zero, ErrInvalidAmount
	}
	return a, nil
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

func (a Amount) GreaterThan(b Amount) bool {
	return a.d.GreaterThan(b.d)
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// String renders the amount with exactly two decimal places, e.g. "70.00".
func (a Amount) String() string {
	return a.d.StringFixed(2)
}
