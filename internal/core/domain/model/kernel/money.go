package kernel

import (
	"fmt"

	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every monetary amount is rounded to.
const moneyScale = 2

// Money is a value object representing a non-negative fixed-point monetary amount.
// It wraps github.com/shopspring/decimal to avoid binary floating point drift in
// order totals. Amounts are always rounded half-up to two decimal places.
//
// The zero value of Money is a valid zero amount; arithmetic that would produce
// a negative amount is rejected at construction.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	line := price.MulInt(3)                // 30.00
//	total, err := line.Sub(discount)       // fails if discount > line
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// NewMoneyFromString creates a Money from its decimal string representation,
// e.g. "10.00". Returns an error for malformed or negative input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt returns the amount multiplied by a non-negative integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty))).Round(moneyScale)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts numerically, ignoring representation scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
