package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAdjustmentFromString(t *testing.T) {
	t.Run("should accept negative adjustments", func(t *testing.T) {
		a, err := kernel.PriceAdjustmentFromString("-100")

		require.NoError(t, err)
		assert.Equal(t, "-100.00", a.String())
		assert.True(t, a.IsNegative())
		require.NoError(t, a.Validate())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.PriceAdjustmentFromString("cheap")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should round to two digits", func(t *testing.T) {
		a := kernel.NewPriceAdjustment(decimal.RequireFromString("-0.125"))

		assert.Equal(t, "-0.13", a.String())
	})
}

func TestPriceAdjustment_Add(t *testing.T) {
	sum := kernel.MustPriceAdjustment("50").Add(kernel.MustPriceAdjustment("-80.50"))

	assert.Equal(t, "-30.50", sum.String())
	assert.True(t, kernel.ZeroPriceAdjustment().IsZero())
}

func TestMoney_Adjust(t *testing.T) {
	price := kernel.MustMoney("400.00")

	assert.Equal(t, "450.00", price.Adjust(kernel.MustPriceAdjustment("50")).String())
	assert.Equal(t, "300.00", price.Adjust(kernel.MustPriceAdjustment("-100")).String())
	assert.Equal(t, "0.00", price.Adjust(kernel.MustPriceAdjustment("-500")).String())
	require.NoError(t, price.Adjust(kernel.MustPriceAdjustment("-500")).Validate())
}

func TestPriceAdjustment_Validate(t *testing.T) {
	require.ErrorIs(t, kernel.PriceAdjustment{}.Validate(), kernel.ErrPriceAdjustmentIsNotConstructed)
}
