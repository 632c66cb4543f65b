package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for monetary amounts.
const MoneyScale = 2

// Money is a currency-agnostic fixed-point amount rounded to MoneyScale digits,
// half away from zero. The zero value is a valid amount of 0.00.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds amount to MoneyScale digits.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(MoneyScale)}
}

// MoneyFromString parses an amount such as "1744.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money is invalid", fmt.Errorf("%q: %w", s, err))
	}
	return NewMoney(d), nil
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsEqual compares two amounts numerically.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String formats the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
