package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copy_keeps_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type reason struct {
		text  string
		guard guard.ConstructorGuard
	}
	errReasonNotConstructed := errors.New("reason must be created via newReason")
	newReason := func(text string) (reason, error) {
		if text == "" {
			return reason{}, errors.New("reason is required")
		}
		return reason{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	r, err := newReason("customer called")
	require.NoError(t, err)
	require.NoError(t, r.guard.Validate(errReasonNotConstructed))

	var zero reason
	assert.Equal(t, errReasonNotConstructed, zero.guard.Validate(errReasonNotConstructed))

	_, err = newReason("")
	require.Error(t, err)
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
