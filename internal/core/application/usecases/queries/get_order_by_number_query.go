package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery loads an order by its human-facing number.
type GetOrderByNumberQuery struct {
	number order.Number

	guard guard.ConstructorGuard
}

func NewGetOrderByNumberQuery(number string) (GetOrderByNumberQuery, error) {
	parsed, err := order.ParseNumber(number)
	if err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return GetOrderByNumberQuery{number: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

func (q GetOrderByNumberQuery) Number() order.Number {
	return q.number
}
