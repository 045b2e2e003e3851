package pgtest

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// Now is the creation time of fixture orders unless overridden.
var Now = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

type orderOptions struct {
	customerID kernel.UUID
	createdAt  time.Time
	phone      string
}

type OrderOption func(*orderOptions)

func WithCustomer(id kernel.UUID) OrderOption {
	return func(o *orderOptions) { o.customerID = id }
}

func WithCreatedAt(at time.Time) OrderOption {
	return func(o *orderOptions) { o.createdAt = at }
}

func WithPhone(phone string) OrderOption {
	return func(o *orderOptions) { o.phone = phone }
}

// NewOrder builds a NEW order with two lines, 250.00 x 2 and a 170.00 kompot in a
// small glass (-20.00) x 1, for a total of 650.00. sequence is the per-day
// number suffix.
func NewOrder(t testing.TB, sequence int, opts ...OrderOption) *order.Order {
	t.Helper()

	options := orderOptions{
		customerID: kernel.NewUUID(),
		createdAt:  Now,
		phone:      "+7 912 345-67-89",
	}
	for _, opt := range opts {
		opt(&options)
	}

	instructions := "no sour cream"
	borscht, err := order.NewItem(kernel.NewUUID(), "Borscht", kernel.MustMoney("250.00"), 2, nil, &instructions)
	require.NoError(t, err)
	kompot, err := order.NewItem(kernel.NewUUID(), "Kompot", kernel.MustMoney("170.00"), 1, []order.ItemModifier{
		{OptionID: kernel.NewUUID(), Name: "Small glass", PriceAdjustment: kernel.MustPriceAdjustment("-20.00")},
	}, nil)
	require.NoError(t, err)

	number, err := order.NewNumber(options.createdAt, sequence)
	require.NoError(t, err)
	address, err := kernel.NewAddress("Lenina st. 1, apt 5")
	require.NoError(t, err)
	phone, err := kernel.NewPhone(options.phone)
	require.NoError(t, err)

	subtotal := borscht.Total().Add(kompot.Total())
	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		options.customerID,
		[]order.Item{borscht, kompot},
		order.Delivery{Address: address, Phone: phone},
		order.PaymentCash,
		order.Totals{
			Subtotal:    subtotal,
			DeliveryFee: kernel.ZeroMoney(),
			Discount:    kernel.ZeroMoney(),
			Total:       subtotal,
		},
		options.createdAt,
	)
	require.NoError(t, err)
	return o
}
