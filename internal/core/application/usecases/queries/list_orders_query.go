package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through order summaries, optionally narrowed to one
// status or one customer.
//
// With a status filter the oldest orders come first, which is the order kitchen
// and packing staff work in. Without one the newest orders come first.
type ListOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery treats a zero limit as DefaultListLimit.
func NewListOrdersQuery(status *order.Status, customerID *kernel.UUID, limit, offset int) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	var validationErrs []error
	if status != nil {
		validationErrs = append(validationErrs, status.Validate())
	}
	if customerID != nil {
		validationErrs = append(validationErrs, customerID.Validate())
	}
	if limit < 1 || limit > MaxListLimit {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if offset < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status:     status,
		customerID: customerID,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status     { return q.status }
func (q ListOrdersQuery) CustomerID() *kernel.UUID { return q.customerID }
func (q ListOrdersQuery) Limit() int               { return q.limit }
func (q ListOrdersQuery) Offset() int              { return q.offset }

// ListOrdersQueryResponse is one row of the order list.
type ListOrdersQueryResponse struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	Status     order.Status
	Total      kernel.Money
	CourierID  *kernel.UUID
	CreatedAt  time.Time
}
