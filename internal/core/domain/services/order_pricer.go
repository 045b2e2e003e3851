package services

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// DeliveryFeePolicy quotes the delivery fee for an order. Delivery zones are an
// external capability: the composition root picks an implementation at startup.
type DeliveryFeePolicy interface {
	Quote(ctx context.Context, address kernel.Address, subtotal kernel.Money) (kernel.Money, error)
}

// DiscountPolicy computes the discount granted to a customer for an order.
type DiscountPolicy interface {
	Discount(ctx context.Context, customerID kernel.UUID, subtotal kernel.Money) (kernel.Money, error)
}

// Line is one requested order line, already resolved against the catalog.
type Line struct {
	Product      *catalog.Product
	OptionIDs    []kernel.UUID
	Quantity     int
	Instructions *string
}

// Quote is the priced result of a set of lines.
type Quote struct {
	Items  []order.Item
	Totals order.Totals
}

// OrderPricer snapshots catalog products into order items and computes the order
// totals:
//
//	subtotal = sum(item totals)
//	total    = subtotal + delivery fee - discount
//
// The discount is clamped to subtotal + fee, so the total is never negative.
type OrderPricer struct {
	deliveryFee DeliveryFeePolicy
	discount    DiscountPolicy
}

func NewOrderPricer(deliveryFee DeliveryFeePolicy, discount DiscountPolicy) (*OrderPricer, error) {
	if deliveryFee == nil {
		return nil, errs.NewValueIsRequiredError("deliveryFee")
	}
	if discount == nil {
		return nil, errs.NewValueIsRequiredError("discount")
	}

	return &OrderPricer{
		deliveryFee: deliveryFee,
		discount:    discount,
	}, nil
}

// Price fails with a validation error if any product is unavailable, and with a
// not-found error if any selected modifier option does not belong to its product.
func (p *OrderPricer) Price(
	ctx context.Context,
	customerID kernel.UUID,
	address kernel.Address,
	lines []Line,
) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	subtotal := kernel.ZeroMoney()
	for i, line := range lines {
		item, err := p.priceLine(line)
		if err != nil {
			return Quote{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Total())
	}

	fee, err := p.deliveryFee.Quote(ctx, address, subtotal)
	if err != nil {
		return Quote{}, fmt.Errorf("quote delivery fee: %w", err)
	}
	discount, err := p.discount.Discount(ctx, customerID, subtotal)
	if err != nil {
		return Quote{}, fmt.Errorf("compute discount: %w", err)
	}
	if err = errors.Join(fee.Validate(), discount.Validate()); err != nil {
		return Quote{}, err
	}

	gross := subtotal.Add(fee)
	discount = discount.Min(gross)

	return Quote{
		Items: items,
		Totals: order.Totals{
			Subtotal:    subtotal,
			DeliveryFee: fee,
			Discount:    discount,
			Total:       gross.Sub(discount),
		},
	}, nil
}

func (p *OrderPricer) priceLine(line Line) (order.Item, error) {
	if err := line.Product.Validate(); err != nil {
		return order.Item{}, err
	}
	if !line.Product.IsAvailable() {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("%q is currently unavailable", line.Product.Name()),
		)
	}

	options, err := line.Product.SelectOptions(line.OptionIDs)
	if err != nil {
		return order.Item{}, err
	}
	modifiers := make([]order.ItemModifier, 0, len(options))
	for _, o := range options {
		modifiers = append(modifiers, order.ItemModifier{
			OptionID:        o.ID,
			Name:            o.Name,
			PriceAdjustment: o.PriceAdjustment,
		})
	}

	return order.NewItem(
		line.Product.ID(),
		line.Product.Name(),
		line.Product.Price(),
		line.Quantity,
		modifiers,
		line.Instructions,
	)
}
