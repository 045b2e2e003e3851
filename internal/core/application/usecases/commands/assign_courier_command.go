package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand names the courier who will deliver an order.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID, courierID, managerID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(orderID, courierID, actorID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate(), actorID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }
func (c AssignCourierCommand) ActorID() kernel.UUID   { return c.actorID }
