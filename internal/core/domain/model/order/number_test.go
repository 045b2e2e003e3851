package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	day := time.Date(2026, time.March, 7, 23, 59, 0, 0, time.UTC)

	t.Run("zero pads the sequence", func(t *testing.T) {
		n, err := order.NewNumber(day, 7)

		require.NoError(t, err)
		assert.Equal(t, "20260307-0007", n.String())
	})

	t.Run("grows past four digits", func(t *testing.T) {
		n, err := order.NewNumber(day, 12345)

		require.NoError(t, err)
		assert.Equal(t, "20260307-12345", n.String())
	})

	t.Run("uses the date of the given location", func(t *testing.T) {
		moscow := time.FixedZone("MSK", 3*60*60)

		n, err := order.NewNumber(day.In(moscow), 1)

		require.NoError(t, err)
		assert.Equal(t, "20260308-0001", n.String())
	})

	t.Run("rejects non-positive sequence", func(t *testing.T) {
		_, err := order.NewNumber(day, 0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseNumber(t *testing.T) {
	n, err := order.ParseNumber("20260307-0042")
	require.NoError(t, err)
	assert.Equal(t, "20260307-0042", n.String())

	for _, bad := range []string{"", "2026037-0042", "20260307-42", "20261399-0001", "20260307_0001"} {
		_, err = order.ParseNumber(bad)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}

	var zero order.Number
	assert.ErrorIs(t, zero.Validate(), order.ErrNumberIsNotConstructed)
}
