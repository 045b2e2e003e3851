package queries

import (
	"context"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type GetOrderStatusQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderStatusQueryHandler(orders ports.OrderRepository) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders}
}

// Handle compares the normalized phone with the delivery phone. A mismatch is
// reported exactly like a missing order so numbers cannot be probed.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	o, err := h.orders.GetByNumber(ctx, query.Number())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	if !o.Delivery().Phone.IsEqual(query.Phone()) {
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.Number().String())
	}

	return GetOrderStatusQueryResponse{
		Number:    o.Number().String(),
		Status:    o.Status(),
		Total:     o.Totals().Total,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}, nil
}
