package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

type NewOrderItem struct {
	ProductId    openapi_types.UUID   `json:"product_id"             validate:"required"`
	OptionIds    []openapi_types.UUID `json:"option_ids,omitempty"   validate:"omitempty,dive,required"`
	Quantity     int                  `json:"quantity"               validate:"min=1,max=100"`
	Instructions *string              `json:"instructions,omitempty" validate:"omitempty,max=500"`
}

type NewOrder struct {
	Items           []NewOrderItem `json:"items"             validate:"required,min=1,dive"`
	DeliveryAddress string         `json:"delivery_address"  validate:"required"`
	Phone           string         `json:"phone"             validate:"required"`
	PaymentMethod   string         `json:"payment_method"    validate:"required,oneof=cash card_courier transfer"`
	Comment         *string        `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type Transition struct {
	Status string  `json:"status"           validate:"required"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

type Cancellation struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type CourierAssignment struct {
	CourierId openapi_types.UUID `json:"courier_id" validate:"required"`
}

type ItemModifier struct {
	OptionId        openapi_types.UUID `json:"option_id"`
	Name            string             `json:"name"`
	PriceAdjustment string             `json:"price_adjustment"`
}

type OrderItem struct {
	Id             openapi_types.UUID `json:"id"`
	ProductId      openapi_types.UUID `json:"product_id"`
	ProductName    string             `json:"product_name"`
	UnitPrice      string             `json:"unit_price"`
	Quantity       int                `json:"quantity"`
	Modifiers      []ItemModifier     `json:"modifiers"`
	ModifiersPrice string             `json:"modifiers_price"`
	Total          string             `json:"total"`
	Instructions   *string            `json:"instructions,omitempty"`
}

type Order struct {
	Id                 openapi_types.UUID   `json:"id"`
	OrderNumber        string               `json:"order_number"`
	CustomerId         openapi_types.UUID   `json:"customer_id"`
	CourierId          *openapi_types.UUID  `json:"courier_id,omitempty"`
	Status             string               `json:"status"`
	Version            int                  `json:"version"`
	PaymentMethod      string               `json:"payment_method"`
	PaymentStatus      string               `json:"payment_status"`
	Subtotal           string               `json:"subtotal"`
	DeliveryFee        string               `json:"delivery_fee"`
	DiscountAmount     string               `json:"discount_amount"`
	Total              string               `json:"total"`
	DeliveryAddress    string               `json:"delivery_address"`
	Phone              string               `json:"phone"`
	Comment            *string              `json:"comment,omitempty"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	CancelledById      *openapi_types.UUID  `json:"cancelled_by_id,omitempty"`
	Items              []OrderItem          `json:"items"`
	StatusTimes        map[string]time.Time `json:"status_times"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type OrderSummary struct {
	Id          openapi_types.UUID  `json:"id"`
	OrderNumber string              `json:"order_number"`
	CustomerId  openapi_types.UUID  `json:"customer_id"`
	Status      string              `json:"status"`
	Total       string              `json:"total"`
	CourierId   *openapi_types.UUID `json:"courier_id,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type OrderStatusView struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StatusLogEntry struct {
	Id          openapi_types.UUID  `json:"id"`
	OldStatus   *string             `json:"old_status,omitempty"`
	NewStatus   string              `json:"new_status"`
	ChangedById *openapi_types.UUID `json:"changed_by_id,omitempty"`
	Reason      *string             `json:"reason,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status     *string             `form:"status,omitempty"      json:"status,omitempty"`
	CustomerId *openapi_types.UUID `form:"customer_id,omitempty" json:"customer_id,omitempty"`
	Limit      *int                `form:"limit,omitempty"       json:"limit,omitempty"`
	Offset     *int                `form:"offset,omitempty"      json:"offset,omitempty"`
}

// GetOrderStatusByNumberParams defines parameters for GetOrderStatusByNumber.
type GetOrderStatusByNumberParams struct {
	Phone string `form:"phone" json:"phone"`
}

// CreateOrderParams defines parameters for CreateOrder.
type CreateOrderParams struct {
	XActorID openapi_types.UUID `json:"X-Actor-ID"`
}

// TransitionOrderParams defines parameters for TransitionOrder.
type TransitionOrderParams struct {
	XActorID *openapi_types.UUID `json:"X-Actor-ID,omitempty"`
}

// CancelOrderParams defines parameters for CancelOrder.
type CancelOrderParams struct {
	XActorID openapi_types.UUID `json:"X-Actor-ID"`
}

// AssignCourierParams defines parameters for AssignCourier.
type AssignCourierParams struct {
	XActorID openapi_types.UUID `json:"X-Actor-ID"`
}
