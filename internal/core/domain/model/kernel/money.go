package kernel

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every amount.
const MoneyScale = 2

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a non-negative fixed-point amount with two fractional digits.
// Arithmetic never goes through floating point.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney rounds amount to MoneyScale digits and rejects negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{
		amount: amount.Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal literal such as "250.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString that panics; for literals in tests and defaults.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Sub subtracts other, flooring the result at zero.
func (m Money) Sub(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		result = decimal.Zero
	}
	return Money{amount: result, guard: guard.NewConstructorGuard()}
}

// Adjust applies a signed adjustment, flooring the result at zero.
func (m Money) Adjust(adjustment PriceAdjustment) Money {
	result := m.amount.Add(adjustment.amount)
	if result.IsNegative() {
		result = decimal.Zero
	}
	return Money{amount: result, guard: guard.NewConstructorGuard()}
}

func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
