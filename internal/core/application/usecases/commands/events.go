package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

func newOrderEvent(eventType string, o *order.Order, at time.Time) ports.OrderEvent {
	event := ports.OrderEvent{
		Type:        eventType,
		OrderID:     o.ID().String(),
		OrderNumber: o.Number().String(),
		CustomerID:  o.CustomerID().String(),
		NewStatus:   o.Status().String(),
		Version:     o.Version(),
		OccurredAt:  at,
	}
	if courierID := o.CourierID(); courierID != nil {
		event.CourierID = courierID.String()
	}
	return event
}

func withActor(event ports.OrderEvent, actorID *kernel.UUID, reason *string) ports.OrderEvent {
	if actorID != nil {
		event.ActorID = actorID.String()
	}
	if reason != nil {
		event.Reason = *reason
	}
	return event
}

// publish runs after commit. The committed audit log is the durable record, so a
// failed publish never turns a successful command into a failure.
func publish(ctx context.Context, publisher ports.OrderEventPublisher, event ports.OrderEvent) {
	_ = publisher.Publish(ctx, event)
}
