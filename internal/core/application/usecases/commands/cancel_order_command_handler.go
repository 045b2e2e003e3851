package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/clock"
)

// CancelOrderCommandHandler cancels orders. It uses the same version-gated write
// as status transitions, so a cancellation never overwrites a concurrent change.
// Orders that are delivered, cancelled or in delivery are rejected with a
// validation error.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock clock.Clock,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	now := h.clock.Now()
	if err = o.Cancel(cmd.ActorID(), cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	actorID := cmd.ActorID()
	event := withActor(newOrderEvent(ports.OrderStatusChanged, o, now), &actorID, o.CancellationReason())
	event.OldStatus = previous.String()
	publish(ctx, h.publisher, event)

	return o, nil
}
