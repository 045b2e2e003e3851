package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks to cancel an order. The reason is mandatory.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, actorID kernel.UUID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c CancelOrderCommand) Reason() string       { return c.reason }

func (c *CancelOrderCommand) setReason(raw string) error {
	reason, err := kernel.RequiredText("cancellation reason", raw, kernel.ReasonMaxLength)
	if err != nil {
		return err
	}

	c.reason = reason
	return nil
}
