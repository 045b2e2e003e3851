package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should keep two fractional digits", func(t *testing.T) {
		m, err := kernel.MoneyFromString("250")

		require.NoError(t, err)
		assert.Equal(t, "250.00", m.String())
	})

	t.Run("should round half away from zero", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-0.01")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney("250.00")
	extra := kernel.MustMoney("0.10")

	assert.Equal(t, "500.00", price.Mul(2).String())
	assert.Equal(t, "250.10", price.Add(extra).String())
	assert.Equal(t, "249.90", price.Sub(extra).String())
	assert.Equal(t, "0.00", extra.Sub(price).String(), "subtraction floors at zero")
	assert.Equal(t, "0.10", price.Min(extra).String())
	assert.True(t, kernel.ZeroMoney().IsZero())
	assert.True(t, price.IsEqual(kernel.MustMoney("250")))
	assert.True(t, decimal.RequireFromString("250").Equal(price.Decimal()))
}

func TestMoney_FloatingPointFree(t *testing.T) {
	sum := kernel.ZeroMoney()
	for range 10 {
		sum = sum.Add(kernel.MustMoney("0.10"))
	}

	assert.Equal(t, "1.00", sum.String())
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money

	assert.ErrorIs(t, zero.Validate(), kernel.ErrMoneyIsNotConstructed)
	require.NoError(t, kernel.ZeroMoney().Validate())
}
