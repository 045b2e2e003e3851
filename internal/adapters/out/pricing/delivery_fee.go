// Package pricing holds the delivery fee and discount policies the service can
// run with. The composition root picks one of each from configuration.
package pricing

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// FreeDelivery is used while the delivery fee feature is off.
type FreeDelivery struct{}

func (FreeDelivery) Quote(context.Context, kernel.Address, kernel.Money) (kernel.Money, error) {
	return kernel.ZeroMoney(), nil
}

// FlatDeliveryFee charges the same fee for every address. When freeFrom is set,
// orders whose subtotal reaches it ship for free.
type FlatDeliveryFee struct {
	fee      kernel.Money
	freeFrom *kernel.Money
}

func NewFlatDeliveryFee(fee kernel.Money, freeFrom *kernel.Money) (FlatDeliveryFee, error) {
	if err := fee.Validate(); err != nil {
		return FlatDeliveryFee{}, err
	}
	if freeFrom != nil {
		if err := freeFrom.Validate(); err != nil {
			return FlatDeliveryFee{}, err
		}
	}

	return FlatDeliveryFee{fee: fee, freeFrom: freeFrom}, nil
}

func (p FlatDeliveryFee) Quote(_ context.Context, _ kernel.Address, subtotal kernel.Money) (kernel.Money, error) {
	if p.freeFrom != nil && !subtotal.Decimal().LessThan(p.freeFrom.Decimal()) {
		return kernel.ZeroMoney(), nil
	}
	return p.fee, nil
}
