package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 100
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// ItemModifier is a frozen copy of a selected modifier option.
type ItemModifier struct {
	OptionID        kernel.UUID
	Name            string
	PriceAdjustment kernel.PriceAdjustment
}

// Item is an order line. Product name and price are copied from the catalog when
// the order is placed, so later menu edits never change a historical order.
type Item struct {
	id             kernel.UUID
	productID      kernel.UUID
	productName    string
	unitPrice      kernel.Money
	quantity       int
	modifiers      []ItemModifier
	modifiersPrice kernel.PriceAdjustment
	total          kernel.Money
	instructions   *string

	guard guard.ConstructorGuard
}

// NewItem snapshots a catalog product and computes
//
//	total = max(0, unitPrice + sum(modifier adjustments)) * quantity
//
// Adjustments may be negative. Only the resulting unit price is floored at zero.
func NewItem(
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	modifiers []ItemModifier,
	instructions *string,
) (Item, error) {
	if err := errors.Join(productID.Validate(), unitPrice.Validate()); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, MaxItemQuantity)
	}

	modifiersPrice := kernel.ZeroPriceAdjustment()
	for _, m := range modifiers {
		if err := errors.Join(m.OptionID.Validate(), m.PriceAdjustment.Validate()); err != nil {
			return Item{}, fmt.Errorf("modifier %q: %w", m.Name, err)
		}
		modifiersPrice = modifiersPrice.Add(m.PriceAdjustment)
	}

	return Item{
		id:             kernel.NewUUID(),
		productID:      productID,
		productName:    productName,
		unitPrice:      unitPrice,
		quantity:       quantity,
		modifiers:      append([]ItemModifier(nil), modifiers...),
		modifiersPrice: modifiersPrice,
		total:          unitPrice.Adjust(modifiersPrice).Mul(quantity),
		instructions:   instructions,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rebuilds a persisted line without recomputing prices.
func RestoreItem(
	id, productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	modifiers []ItemModifier,
	modifiersPrice kernel.PriceAdjustment,
	total kernel.Money,
	instructions *string,
) Item {
	return Item{
		id:             id,
		productID:      productID,
		productName:    productName,
		unitPrice:      unitPrice,
		quantity:       quantity,
		modifiers:      modifiers,
		modifiersPrice: modifiersPrice,
		total:          total,
		instructions:   instructions,
		guard:          guard.NewConstructorGuard(),
	}
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID              { return i.id }
func (i Item) ProductID() kernel.UUID       { return i.productID }
func (i Item) ProductName() string          { return i.productName }
func (i Item) UnitPrice() kernel.Money      { return i.unitPrice }
func (i Item) Quantity() int                { return i.quantity }
func (i Item) Total() kernel.Money          { return i.total }
func (i Item) Instructions() *string        { return i.instructions }

// ModifiersPrice is the per-unit sum of the modifier adjustments. It may be negative.
func (i Item) ModifiersPrice() kernel.PriceAdjustment {
	return i.modifiersPrice
}

func (i Item) Modifiers() []ItemModifier {
	return append([]ItemModifier(nil), i.modifiers...)
}
