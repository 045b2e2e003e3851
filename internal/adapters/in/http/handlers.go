package http

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
)

// The server depends on the use case handlers only through these interfaces.

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type TransitionStatusHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionStatusCommand) (*order.Order, error)
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

type AssignCourierHandler interface {
	Handle(ctx context.Context, cmd commands.AssignCourierCommand) (*order.Order, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
}

type GetOrderByNumberHandler interface {
	Handle(ctx context.Context, query queries.GetOrderByNumberQuery) (*order.Order, error)
}

type GetOrderStatusHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
}

type GetOrderHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.GetOrderHistoryQueryResponse, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder      CreateOrderHandler
	TransitionStatus TransitionStatusHandler
	CancelOrder      CancelOrderHandler
	AssignCourier    AssignCourierHandler
	GetOrder         GetOrderHandler
	GetOrderByNumber GetOrderByNumberHandler
	GetOrderStatus   GetOrderStatusHandler
	ListOrders       ListOrdersHandler
	GetOrderHistory  GetOrderHistoryHandler
}
