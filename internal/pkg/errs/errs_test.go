package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("digits missing")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  errs.NewObjectNotFoundError("order", "ORD-20250101-0001"),
			want: "object not found: ORD-20250101-0001",
		},
		{
			name: "not found with cause",
			err:  errs.NewObjectNotFoundErrorWithCause("product", "p-1", errors.New("archived")),
			want: "object not found: param is: product, ID is: p-1 (cause: archived)",
		},
		{
			name: "not found with numeric id",
			err:  errs.NewObjectNotFoundError("order", 7),
			want: "object not found: %!s(int=7)",
		},
		{
			name: "invalid",
			err:  errs.NewValueIsInvalidError("payment method"),
			want: "value is invalid: payment method",
		},
		{
			name: "invalid with cause",
			err:  errs.NewValueIsInvalidErrorWithCause("phone", cause),
			want: "value is invalid: phone (cause: digits missing)",
		},
		{
			name: "out of range",
			err:  errs.NewValueIsOutOfRangeError("quantity", 101, 1, 100),
			want: "value is invalid: 101 is quantity, min value is 1, max value is 100",
		},
		{
			name: "out of range with cause",
			err:  errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, 100, cause),
			want: "value is invalid: 0 is quantity, min value is 1, max value is 100 (cause: digits missing)",
		},
		{
			name: "required",
			err:  errs.NewValueIsRequiredError("reason"),
			want: "value is required: reason",
		},
		{
			name: "required with cause",
			err:  errs.NewValueIsRequiredErrorWithCause("items", cause),
			want: "value is required: items (cause: digits missing)",
		},
		{
			name: "state transition",
			err:  errs.NewInvalidStateTransitionError("NEW", "PACKED"),
			want: "invalid state transition: cannot transition from NEW to PACKED",
		},
		{
			name: "concurrency conflict",
			err:  errs.NewConcurrencyConflictError("order", "42", 3),
			want: "concurrency conflict: order 42 was modified concurrently (expected version 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorMessagesAreSingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("comment", "ring\ntwice", 0, 1000)

	assert.Contains(t, err.Error(), "ring twice")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorFields(t *testing.T) {
	cause := errors.New("connection reset")

	notFound := errs.NewObjectNotFoundErrorWithCause("courier", "c-1", cause)
	assert.Equal(t, "courier", notFound.ParamName)
	assert.Equal(t, "c-1", notFound.ID)
	assert.Equal(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("limit", 500, 1, 100)
	assert.Equal(t, "limit", outOfRange.ParamName)
	assert.Equal(t, 500, outOfRange.Value)
	assert.Equal(t, 1, outOfRange.Min)
	assert.Equal(t, 100, outOfRange.Max)
	require.NoError(t, outOfRange.Cause)

	transition := errs.NewInvalidStateTransitionError("DELIVERED", "CANCELLED")
	assert.Equal(t, "DELIVERED", transition.From)
	assert.Equal(t, "CANCELLED", transition.To)

	conflict := errs.NewConcurrencyConflictError("order", "o-1", 5)
	assert.Equal(t, "order", conflict.ParamName)
	assert.Equal(t, 5, conflict.ExpectedVersion)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		sentinel   error
		validation bool
	}{
		{"not found", errs.NewObjectNotFoundError("order", "1"), errs.ErrObjectNotFound, false},
		{"invalid", errs.NewValueIsInvalidError("address"), errs.ErrValueIsInvalid, true},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), errs.ErrValueIsOutOfRange, true},
		{"required", errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired, true},
		{"state transition", errs.NewInvalidStateTransitionError("PAID", "NEW"), errs.ErrInvalidStateTransition, false},
		{"conflict", errs.NewConcurrencyConflictError("order", "1", 2), errs.ErrConcurrencyConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handle command: %w", tt.err)

			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.validation, errs.IsValidation(wrapped))
		})
	}

	assert.False(t, errs.IsValidation(errors.New("boom")))
	require.NotErrorIs(t, errs.NewConcurrencyConflictError("order", "1", 2), errs.ErrInvalidStateTransition)
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid state transition", errs.ErrInvalidStateTransition.Error())
	assert.Equal(t, "concurrency conflict", errs.ErrConcurrencyConflict.Error())
}
