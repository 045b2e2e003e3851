package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts orders in the given statuses. No statuses
// means every status.
type CountOrdersByStatusQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery(statuses ...order.Status) (CountOrdersByStatusQuery, error) {
	if len(statuses) == 0 {
		statuses = order.Statuses()
	}

	seen := make(map[order.Status]struct{}, len(statuses))
	distinct := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return CountOrdersByStatusQuery{}, err
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
	}

	return CountOrdersByStatusQuery{statuses: distinct, guard: guard.NewConstructorGuard()}, nil
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

func (q CountOrdersByStatusQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}
