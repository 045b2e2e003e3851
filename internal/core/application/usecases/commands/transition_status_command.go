package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrTransitionStatusCommandIsNotConstructed = errors.New(
	"TransitionStatusCommand must be created via NewTransitionStatusCommand constructor",
)

// TransitionStatusCommand moves an order along one edge of the workflow graph.
// actorID is nil for system-initiated changes.
type TransitionStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actorID *kernel.UUID
	reason  *string

	guard guard.ConstructorGuard
}

func NewTransitionStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID *kernel.UUID,
	reason string,
) (TransitionStatusCommand, error) {
	cmd := TransitionStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActorID(actorID),
		cmd.setReason(reason),
	); err != nil {
		return TransitionStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStatusCommandIsNotConstructed)
}

func (c TransitionStatusCommand) OrderID() kernel.UUID  { return c.orderID }
func (c TransitionStatusCommand) Target() order.Status  { return c.target }
func (c TransitionStatusCommand) ActorID() *kernel.UUID { return c.actorID }
func (c TransitionStatusCommand) Reason() *string       { return c.reason }

func (c *TransitionStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionStatusCommand) setActorID(actorID *kernel.UUID) error {
	if actorID == nil {
		return nil
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	id := *actorID
	c.actorID = &id
	return nil
}

func (c *TransitionStatusCommand) setReason(raw string) error {
	reason, err := kernel.OptionalText("reason", raw, kernel.ReasonMaxLength)
	if err != nil {
		return err
	}

	c.reason = reason
	return nil
}
