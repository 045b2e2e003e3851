package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/clock"
	"foodorder/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders.
//
// Creation is all-or-nothing: every product is resolved and priced before anything
// is written. The order number is reserved in its own statement ahead of the order
// transaction, so a creation that fails afterwards leaves a gap in the day's
// sequence.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	pricer     *services.OrderPricer
	sequence   ports.OrderNumberSequence
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	pricer *services.OrderPricer,
	sequence ports.OrderNumberSequence,
	clock clock.Clock,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricer:     pricer,
		sequence:   sequence,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle returns the created order in status NEW at version 1.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, err := h.resolveLines(ctx, cmd)
	if err != nil {
		return nil, err
	}

	quote, err := h.pricer.Price(ctx, cmd.CustomerID(), cmd.Address(), lines)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	sequence, err := h.sequence.Next(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("reserve order number: %w", err)
	}
	number, err := order.NewNumber(now, sequence)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.CustomerID(),
		quote.Items,
		order.Delivery{
			Address: cmd.Address(),
			Phone:   cmd.Phone(),
			Comment: cmd.Comment(),
		},
		cmd.PaymentMethod(),
		quote.Totals,
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	customerID := cmd.CustomerID()
	publish(ctx, h.publisher, withActor(newOrderEvent(ports.OrderCreated, created, now), &customerID, nil))

	return created, nil
}

func (h CreateOrderCommandHandler) resolveLines(ctx context.Context, cmd CreateOrderCommand) ([]services.Line, error) {
	products, err := h.catalog.GetProducts(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	lines := make([]services.Line, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		product, ok := products[l.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", l.ProductID)
		}
		lines = append(lines, services.Line{
			Product:      product,
			OptionIDs:    l.OptionIDs,
			Quantity:     l.Quantity,
			Instructions: l.Instructions,
		})
	}
	return lines, nil
}
