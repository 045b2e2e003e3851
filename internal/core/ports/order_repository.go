package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its items and the pending audit entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a mutated order. The write only succeeds if the stored row
	// still carries aggregate.ExpectedVersion(); otherwise it returns
	// errs.ConcurrencyConflictError and nothing is written. Pending audit entries
	// are written atomically with the row.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)
}

// OrderNumberSequence reserves per-day order sequence values.
//
// Next atomically increments the counter of the given calendar day, creating it
// at 1 if absent, and returns the new value. Concurrent callers always get
// distinct values.
type OrderNumberSequence interface {
	Next(ctx context.Context, day time.Time) (int, error)
}
