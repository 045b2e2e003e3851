package pricing

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// NoDiscount grants nothing. It is the only discount policy: promo codes are
// handled outside this service.
type NoDiscount struct{}

func (NoDiscount) Discount(context.Context, kernel.UUID, kernel.Money) (kernel.Money, error) {
	return kernel.ZeroMoney(), nil
}
