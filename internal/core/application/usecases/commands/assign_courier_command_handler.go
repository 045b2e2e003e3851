package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/clock"
	"foodorder/internal/pkg/errs"
)

// AssignCourierCommandHandler attaches a courier to an order.
//
// Business rules:
//   - the courier must exist (NotFound otherwise) and be an active user with
//     the courier role (Validation otherwise)
//   - the courier is set once and never on a terminal order
//   - the write is version-gated like a status transition
//
// The status does not change; callers usually follow with a transition to ASSIGNED.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	staff      ports.StaffDirectory
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
}

func NewAssignCourierCommandHandler(
	uowFactory OrderUoWFactory,
	staff ports.StaffDirectory,
	clock clock.Clock,
	publisher ports.OrderEventPublisher,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		staff:      staff,
		clock:      clock,
		publisher:  publisher,
	}
}

func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	courier, err := h.staff.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if !courier.IsActiveCourier() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("user %s is not an active courier", courier.ID()),
		)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	now := h.clock.Now()
	if err = o.AssignCourier(courier.ID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	actorID := cmd.ActorID()
	publish(ctx, h.publisher, withActor(newOrderEvent(ports.OrderCourierAssigned, o, now), &actorID, nil))

	return o, nil
}
