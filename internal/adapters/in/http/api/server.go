package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const actorHeader = "X-Actor-ID"

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// ListOrders handles (GET /orders).
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// CreateOrder handles (POST /orders).
	CreateOrder(ctx echo.Context, params CreateOrderParams) error
	// GetOrderByNumber handles (GET /orders/by-number/{orderNumber}).
	GetOrderByNumber(ctx echo.Context, orderNumber string) error
	// GetOrderStatusByNumber handles (GET /orders/by-number/{orderNumber}/status).
	GetOrderStatusByNumber(ctx echo.Context, orderNumber string, params GetOrderStatusByNumberParams) error
	// GetOrder handles (GET /orders/{orderId}).
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// GetOrderHistory handles (GET /orders/{orderId}/history).
	GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error
	// TransitionOrder handles (POST /orders/{orderId}/transitions).
	TransitionOrder(ctx echo.Context, orderId openapi_types.UUID, params TransitionOrderParams) error
	// CancelOrder handles (POST /orders/{orderId}/cancel).
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID, params CancelOrderParams) error
	// AssignCourier handles (POST /orders/{orderId}/courier).
	AssignCourier(ctx echo.Context, orderId openapi_types.UUID, params AssignCourierParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	for _, p := range []struct {
		name string
		dest any
	}{
		{"status", &params.Status},
		{"customer_id", &params.CustomerId},
		{"limit", &params.Limit},
		{"offset", &params.Offset},
	} {
		err := runtime.BindQueryParameter("form", true, false, p.name, ctx.QueryParams(), p.dest)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", p.name, err))
		}
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var params CreateOrderParams

	actorID, err := bindActor(ctx, true)
	if err != nil {
		return err
	}
	params.XActorID = *actorID

	return w.Handler.CreateOrder(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrderByNumber(ctx echo.Context) error {
	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrderByNumber(ctx, orderNumber)
}

func (w *ServerInterfaceWrapper) GetOrderStatusByNumber(ctx echo.Context) error {
	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}

	var params GetOrderStatusByNumberParams

	err = runtime.BindQueryParameter("form", true, true, "phone", ctx.QueryParams(), &params.Phone)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter phone: %s", err))
	}

	return w.Handler.GetOrderStatusByNumber(ctx, orderNumber, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrderHistory(ctx, orderID)
}

func (w *ServerInterfaceWrapper) TransitionOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var params TransitionOrderParams

	if params.XActorID, err = bindActor(ctx, false); err != nil {
		return err
	}

	return w.Handler.TransitionOrder(ctx, orderID, params)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var params CancelOrderParams

	actorID, err := bindActor(ctx, true)
	if err != nil {
		return err
	}
	params.XActorID = *actorID

	return w.Handler.CancelOrder(ctx, orderID, params)
}

func (w *ServerInterfaceWrapper) AssignCourier(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var params AssignCourierParams

	actorID, err := bindActor(ctx, true)
	if err != nil {
		return err
	}
	params.XActorID = *actorID

	return w.Handler.AssignCourier(ctx, orderID, params)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderID openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderID, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return orderID, nil
}

func bindOrderNumber(ctx echo.Context) (string, error) {
	var orderNumber string

	err := runtime.BindStyledParameterWithOptions("simple", "orderNumber", ctx.Param("orderNumber"), &orderNumber,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNumber: %s", err))
	}

	return orderNumber, nil
}

// bindActor reads the X-Actor-ID header. Without the header it returns nil, or
// a 400 error when required is set.
func bindActor(ctx echo.Context, required bool) (*openapi_types.UUID, error) {
	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey(actorHeader)]
	if !found {
		if required {
			return nil, echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Header parameter %s is required, but not found", actorHeader))
		}
		return nil, nil //nolint:nilnil // the header is optional
	}

	if n := len(valueList); n != 1 {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Expected one value for %s, got %d", actorHeader, n))
	}

	var actorID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", actorHeader, valueList[0], &actorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter %s: %s", actorHeader, err))
	}

	return &actorID, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL registers every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/by-number/:orderNumber", wrapper.GetOrderByNumber)
	router.GET(baseURL+"/orders/by-number/:orderNumber/status", wrapper.GetOrderStatusByNumber)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/orders/:orderId/history", wrapper.GetOrderHistory)
	router.POST(baseURL+"/orders/:orderId/transitions", wrapper.TransitionOrder)
	router.POST(baseURL+"/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/orders/:orderId/courier", wrapper.AssignCourier)
}
