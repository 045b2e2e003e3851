package http

import (
	"net/http"

	"foodorder/internal/adapters/in/http/api"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

// Server implements api.ServerInterface on top of the order use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
	}
}

var _ api.ServerInterface = (*Server)(nil)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	var customerID *kernel.UUID
	if params.CustomerId != nil {
		id, err := toKernelUUID(*params.CustomerId)
		if err != nil {
			return s.fail(ctx, err)
		}
		customerID = &id
	}

	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
		if limit == 0 {
			return s.fail(ctx, errs.NewValueIsOutOfRangeError("limit", limit, 1, queries.MaxListLimit))
		}
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(status, customerID, limit, offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = toOrderSummary(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The caller is the customer.
func (s *Server) CreateOrder(ctx echo.Context, params api.CreateOrderParams) error {
	var body api.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	customerID, err := toKernelUUID(params.XActorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.OrderLineInput, len(body.Items))
	for i, item := range body.Items {
		line, lineErr := toOrderLineInput(item)
		if lineErr != nil {
			return s.fail(ctx, lineErr)
		}
		lines[i] = line
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		lines,
		body.DeliveryAddress,
		body.Phone,
		body.PaymentMethod,
		deref(body.Comment),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// GetOrderByNumber handles GET /api/v1/orders/by-number/{orderNumber}. Unlike the
// status lookup it is meant for staff and returns the whole order.
func (s *Server) GetOrderByNumber(ctx echo.Context, orderNumber string) error {
	query, err := queries.NewGetOrderByNumberQuery(orderNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetOrderStatusByNumber handles GET /api/v1/orders/by-number/{orderNumber}/status.
func (s *Server) GetOrderStatusByNumber(
	ctx echo.Context,
	orderNumber string,
	params api.GetOrderStatusByNumberParams,
) error {
	query, err := queries.NewGetOrderStatusQuery(orderNumber, params.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.OrderStatusView{
		OrderNumber: view.Number,
		Status:      view.Status.String(),
		Total:       view.Total.String(),
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.StatusLogEntry, len(entries))
	for i, entry := range entries {
		response[i] = toStatusLogEntry(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params api.TransitionOrderParams,
) error {
	var body api.Transition
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	var actorID *kernel.UUID
	if params.XActorID != nil {
		id, idErr := toKernelUUID(*params.XActorID)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		actorID = &id
	}

	cmd, err := commands.NewTransitionStatusCommand(orderID, target, actorID, deref(body.Reason))
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.TransitionStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID, params api.CancelOrderParams) error {
	var body api.Cancellation
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	actorID, err := toKernelUUID(params.XActorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, body.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// AssignCourier handles POST /api/v1/orders/{orderId}/courier.
func (s *Server) AssignCourier(ctx echo.Context, orderId openapi_types.UUID, params api.AssignCourierParams) error {
	var body api.CourierAssignment
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	courierID, err := toKernelUUID(body.CourierId)
	if err != nil {
		return s.fail(ctx, err)
	}
	actorID, err := toKernelUUID(params.XActorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}
