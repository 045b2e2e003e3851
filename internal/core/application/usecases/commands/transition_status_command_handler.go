package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/clock"
)

// TransitionStatusCommandHandler applies a status change with optimistic locking.
//
// The order is read, the edge is checked against the workflow graph, and the write
// is conditioned on the version that was read. A concurrent writer that committed
// in between makes the write match no rows, and Handle returns
// errs.ConcurrencyConflictError. The caller must re-read before retrying.
//
// Example:
//
//	cmd, _ := NewTransitionStatusCommand(orderID, order.Confirmed, &managerID, "")
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidStateTransition):
//	    // not an edge of the graph, do not retry
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // someone else changed the order, re-read first
//	}
type TransitionStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
}

func NewTransitionStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock clock.Clock,
	publisher ports.OrderEventPublisher,
) TransitionStatusCommandHandler {
	return TransitionStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle returns the order as committed.
func (h TransitionStatusCommandHandler) Handle(ctx context.Context, cmd TransitionStatusCommand) (*order.Order, error) {
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
	if err = o.TransitionTo(cmd.Target(), cmd.ActorID(), cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := withActor(newOrderEvent(ports.OrderStatusChanged, o, now), cmd.ActorID(), cmd.Reason())
	event.OldStatus = previous.String()
	publish(ctx, h.publisher, event)

	return o, nil
}
