package kernel

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPriceAdjustmentIsNotConstructed = errors.New(
	"PriceAdjustment must be created via NewPriceAdjustment, PriceAdjustmentFromString, or ZeroPriceAdjustment",
)

// PriceAdjustment is a signed per-unit change of a product price, such as
// "+50.00" for a large size or "-100.00" for a small one.
type PriceAdjustment struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

func NewPriceAdjustment(amount decimal.Decimal) PriceAdjustment {
	return PriceAdjustment{amount: amount.Round(MoneyScale), guard: guard.NewConstructorGuard()}
}

func PriceAdjustmentFromString(s string) (PriceAdjustment, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return PriceAdjustment{}, errs.NewValueIsInvalidErrorWithCause("price adjustment", err)
	}
	return NewPriceAdjustment(amount), nil
}

// MustPriceAdjustment is PriceAdjustmentFromString that panics.
func MustPriceAdjustment(s string) PriceAdjustment {
	a, err := PriceAdjustmentFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func ZeroPriceAdjustment() PriceAdjustment {
	return NewPriceAdjustment(decimal.Zero)
}

func (a PriceAdjustment) Validate() error {
	return a.guard.Validate(ErrPriceAdjustmentIsNotConstructed)
}

func (a PriceAdjustment) Decimal() decimal.Decimal {
	return a.amount
}

func (a PriceAdjustment) Add(other PriceAdjustment) PriceAdjustment {
	return NewPriceAdjustment(a.amount.Add(other.amount))
}

func (a PriceAdjustment) IsZero() bool {
	return a.amount.IsZero()
}

func (a PriceAdjustment) IsNegative() bool {
	return a.amount.IsNegative()
}

func (a PriceAdjustment) String() string {
	return a.amount.StringFixed(MoneyScale)
}
