package services_test

import (
	"context"
	"errors"
	"testing"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedFee struct {
	fee kernel.Money
	err error
}

func (f fixedFee) Quote(context.Context, kernel.Address, kernel.Money) (kernel.Money, error) {
	return f.fee, f.err
}

type fixedDiscount struct {
	discount kernel.Money
}

func (f fixedDiscount) Discount(context.Context, kernel.UUID, kernel.Money) (kernel.Money, error) {
	return f.discount, nil
}

func newProduct(t *testing.T, name, price string, options ...catalog.ModifierOption) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), name, kernel.MustMoney(price), true, false, catalog.Stock{}, options)
	require.NoError(t, err)
	return p
}

func TestOrderPricer_Price(t *testing.T) {
	ctx := t.Context()
	address, err := kernel.NewAddress("Lenina st. 1, apt 5")
	require.NoError(t, err)
	customerID := kernel.NewUUID()

	t.Run("sums item totals without fee or discount", func(t *testing.T) {
		pricer, err := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.ZeroMoney()})
		require.NoError(t, err)

		quote, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: newProduct(t, "Borscht", "250.00"), Quantity: 2},
			{Product: newProduct(t, "Kompot", "150.00"), Quantity: 1},
		})

		require.NoError(t, err)
		require.Len(t, quote.Items, 2)
		assert.Equal(t, "650.00", quote.Totals.Subtotal.String())
		assert.Equal(t, "650.00", quote.Totals.Total.String())
		assert.True(t, quote.Totals.DeliveryFee.IsZero())
		assert.True(t, quote.Totals.Discount.IsZero())
	})

	t.Run("includes modifiers fee and discount", func(t *testing.T) {
		large := catalog.ModifierOption{ID: kernel.NewUUID(), Name: "Large", PriceAdjustment: kernel.MustPriceAdjustment("50"), IsActive: true}
		pricer, err := services.NewOrderPricer(fixedFee{fee: kernel.MustMoney("100")}, fixedDiscount{discount: kernel.MustMoney("30")})
		require.NoError(t, err)

		quote, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: newProduct(t, "Pizza", "500", large), OptionIDs: []kernel.UUID{large.ID}, Quantity: 2},
		})

		require.NoError(t, err)
		assert.Equal(t, "1100.00", quote.Totals.Subtotal.String())
		assert.Equal(t, "1170.00", quote.Totals.Total.String())
		assert.Equal(t, "50.00", quote.Items[0].ModifiersPrice().String())
		require.Len(t, quote.Items[0].Modifiers(), 1)
		assert.Equal(t, "Large", quote.Items[0].Modifiers()[0].Name)
	})

	t.Run("prices negative modifier options", func(t *testing.T) {
		small := catalog.ModifierOption{ID: kernel.NewUUID(), Name: "Small", PriceAdjustment: kernel.MustPriceAdjustment("-100"), IsActive: true}
		large := catalog.ModifierOption{ID: kernel.NewUUID(), Name: "Large", PriceAdjustment: kernel.MustPriceAdjustment("50"), IsActive: true}
		pricer, err := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.ZeroMoney()})
		require.NoError(t, err)
		pizza := newProduct(t, "Pizza", "500", small, large)

		quote, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: pizza, OptionIDs: []kernel.UUID{small.ID}, Quantity: 2},
			{Product: pizza, OptionIDs: []kernel.UUID{large.ID}, Quantity: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, "-100.00", quote.Items[0].ModifiersPrice().String())
		assert.Equal(t, "800.00", quote.Items[0].Total().String())
		assert.Equal(t, "550.00", quote.Items[1].Total().String())
		assert.Equal(t, "1350.00", quote.Totals.Total.String())
	})

	t.Run("clamps discount so total is never negative", func(t *testing.T) {
		pricer, err := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.MustMoney("1000")})
		require.NoError(t, err)

		quote, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: newProduct(t, "Tea", "80"), Quantity: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, "80.00", quote.Totals.Discount.String())
		assert.True(t, quote.Totals.Total.IsZero())
	})

	t.Run("rejects unavailable product", func(t *testing.T) {
		archived, err := catalog.NewProduct(kernel.NewUUID(), "Old", kernel.MustMoney("10"), true, true, catalog.Stock{}, nil)
		require.NoError(t, err)
		pricer, _ := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.ZeroMoney()})

		_, err = pricer.Price(ctx, customerID, address, []services.Line{{Product: archived, Quantity: 1}})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown modifier option", func(t *testing.T) {
		pricer, _ := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.ZeroMoney()})

		_, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: newProduct(t, "Soup", "200"), OptionIDs: []kernel.UUID{kernel.NewUUID()}, Quantity: 1},
		})

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects quantity out of range", func(t *testing.T) {
		pricer, _ := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.ZeroMoney()})

		_, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: newProduct(t, "Soup", "200"), Quantity: 101},
		})

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects empty order", func(t *testing.T) {
		pricer, _ := services.NewOrderPricer(fixedFee{fee: kernel.ZeroMoney()}, fixedDiscount{discount: kernel.ZeroMoney()})

		_, err := pricer.Price(ctx, customerID, address, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("propagates fee policy failure", func(t *testing.T) {
		boom := errors.New("zones unavailable")
		pricer, _ := services.NewOrderPricer(fixedFee{err: boom}, fixedDiscount{discount: kernel.ZeroMoney()})

		_, err := pricer.Price(ctx, customerID, address, []services.Line{
			{Product: newProduct(t, "Soup", "200"), Quantity: 1},
		})

		assert.ErrorIs(t, err, boom)
	})
}

func TestNewOrderPricer_RequiresPolicies(t *testing.T) {
	_, err := services.NewOrderPricer(nil, fixedDiscount{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewOrderPricer(fixedFee{}, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
