package ports

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderCreated         = "order.created"
	OrderStatusChanged   = "order.status_changed"
	OrderCourierAssigned = "order.courier_assigned"
)

// OrderEvent is the notification emitted after an order change is committed.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  string    `json:"customer_id"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status"`
	CourierID   string    `json:"courier_id,omitempty"`
	ActorID     string    `json:"actor_id,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Version     int       `json:"version"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderEventPublisher delivers order events to interested parties.
// Delivery is at most once: the audit log is the durable record.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
