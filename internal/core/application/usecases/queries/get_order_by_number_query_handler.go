package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

type GetOrderByNumberQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderByNumberQueryHandler(orders ports.OrderRepository) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{orders: orders}
}

func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetByNumber(ctx, query.Number())
}
