package kernel_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should trim", func(t *testing.T) {
		a, err := kernel.NewAddress("  Lenina 1, apt 5  ")

		require.NoError(t, err)
		assert.Equal(t, "Lenina 1, apt 5", a.String())
	})

	t.Run("should reject blank", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject short", func(t *testing.T) {
		_, err := kernel.NewAddress(" abc ")

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should count runes not bytes", func(t *testing.T) {
		a, err := kernel.NewAddress("Мира 7")

		require.NoError(t, err)
		assert.Equal(t, "Мира 7", a.String())
	})

	t.Run("should reject long", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("a", kernel.AddressMaxLength+1))

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOptionalText(t *testing.T) {
	t.Run("blank becomes nil", func(t *testing.T) {
		v, err := kernel.OptionalText("comment", "  \n ", kernel.CommentMaxLength)

		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("trims", func(t *testing.T) {
		v, err := kernel.OptionalText("comment", " ring twice ", kernel.CommentMaxLength)

		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "ring twice", *v)
	})

	t.Run("rejects too long", func(t *testing.T) {
		_, err := kernel.OptionalText("comment", strings.Repeat("x", kernel.CommentMaxLength+1), kernel.CommentMaxLength)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("required rejects blank", func(t *testing.T) {
		_, err := kernel.RequiredText("reason", " ", kernel.ReasonMaxLength)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
