package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ProductID    kernel.UUID
	OptionIDs    []kernel.UUID
	Quantity     int
	Instructions string
}

// OrderLine is a validated order line.
type OrderLine struct {
	ProductID    kernel.UUID
	OptionIDs    []kernel.UUID
	Quantity     int
	Instructions *string
}

// CreateOrderCommand is a customer's request to place an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []OrderLineInput{
//	    {ProductID: borschtID, Quantity: 2},
//	}, "Lenina st. 1, apt 5", "8 (912) 345-67-89", "cash", "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	lines         []OrderLine
	address       kernel.Address
	phone         kernel.Phone
	paymentMethod order.PaymentMethod
	comment       *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand normalizes the contact details and validates every line.
// All problems are reported together.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	lines []OrderLineInput,
	address, phone, paymentMethod, comment string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setAddress(address),
		cmd.setPhone(phone),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setComment(comment),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Address() kernel.Address { return c.address }
func (c CreateOrderCommand) Phone() kernel.Phone     { return c.phone }
func (c CreateOrderCommand) Comment() *string        { return c.comment }

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

// ProductIDs returns the distinct products referenced by the lines.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(inputs []OrderLineInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	lines := make([]OrderLine, 0, len(inputs))
	for i, in := range inputs {
		if err := in.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
		for _, id := range in.OptionIDs {
			if err := id.Validate(); err != nil {
				return fmt.Errorf("item %d option: %w", i+1, err)
			}
		}
		if in.Quantity < order.MinItemQuantity || in.Quantity > order.MaxItemQuantity {
			return fmt.Errorf("item %d: %w", i+1, errs.NewValueIsOutOfRangeError(
				"quantity", in.Quantity, order.MinItemQuantity, order.MaxItemQuantity))
		}
		instructions, err := kernel.OptionalText("special instructions", in.Instructions, kernel.InstructionsMaxLength)
		if err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}

		lines = append(lines, OrderLine{
			ProductID:    in.ProductID,
			OptionIDs:    append([]kernel.UUID(nil), in.OptionIDs...),
			Quantity:     in.Quantity,
			Instructions: instructions,
		})
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setAddress(raw string) error {
	address, err := kernel.NewAddress(raw)
	if err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPhone(raw string) error {
	phone, err := kernel.NewPhone(raw)
	if err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(raw string) error {
	method, err := order.ParsePaymentMethod(raw)
	if err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setComment(raw string) error {
	comment, err := kernel.OptionalText("comment", raw, kernel.CommentMaxLength)
	if err != nil {
		return err
	}

	c.comment = comment
	return nil
}
