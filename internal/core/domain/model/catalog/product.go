package catalog

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ModifierOption is a selectable customization of a product, such as "Large" or
// "Extra cheese", with its signed price adjustment per unit.
type ModifierOption struct {
	ID              kernel.UUID
	Name            string
	PriceAdjustment kernel.PriceAdjustment
	IsActive        bool
}

// Product is the read model of a menu entry as the order lifecycle needs it.
//
// A product is available when it is active, not archived and, if stock is
// tracked, has at least one unit left.
type Product struct {
	id         kernel.UUID
	name       string
	price      kernel.Money
	isActive   bool
	isArchived bool
	trackStock bool
	stock      int
	options    []ModifierOption

	guard guard.ConstructorGuard
}

// Stock describes inventory tracking for a product.
type Stock struct {
	Tracked  bool
	Quantity int
}

// NewProduct validates identity, name and price. options are the modifier
// options linked to the product.
func NewProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	isActive, isArchived bool,
	stock Stock,
	options []ModifierOption,
) (*Product, error) {
	if err := errors.Join(id.Validate(), price.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	return &Product{
		id:         id,
		name:       name,
		price:      price,
		isActive:   isActive,
		isArchived: isArchived,
		trackStock: stock.Tracked,
		stock:      stock.Quantity,
		options:    append([]ModifierOption(nil), options...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID     { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Price() kernel.Money { return p.price }

// IsAvailable reports whether the product can be ordered right now.
func (p *Product) IsAvailable() bool {
	if !p.isActive || p.isArchived {
		return false
	}
	return !p.trackStock || p.stock > 0
}

// SelectOptions resolves the requested option identifiers against the product's
// options. An unknown identifier is a not-found error, an inactive option is a
// validation error.
func (p *Product) SelectOptions(ids []kernel.UUID) ([]ModifierOption, error) {
	selected := make([]ModifierOption, 0, len(ids))
	for _, id := range ids {
		option, ok := p.option(id)
		if !ok {
			return nil, errs.NewObjectNotFoundError("modifier option", id)
		}
		if !option.IsActive {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"modifier option",
				fmt.Errorf("option %q of %q is not available", option.Name, p.name),
			)
		}
		selected = append(selected, option)
	}
	return selected, nil
}

func (p *Product) option(id kernel.UUID) (ModifierOption, bool) {
	for _, o := range p.options {
		if o.ID.IsEqual(id) {
			return o, true
		}
	}
	return ModifierOption{}, false
}
