// Package catalogrepo reads the menu (products, modifiers and their options)
// as the order lifecycle needs it when an order is placed.
package catalogrepo

import (
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table. Modifiers are linked through product_modifiers.
type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsActive      bool            `gorm:"not null"`
	IsArchived    bool            `gorm:"not null;default:false"`
	TrackStock    bool            `gorm:"not null;default:false"`
	StockQuantity *int            `gorm:"type:int"`
	Modifiers     []ModifierDTO   `gorm:"many2many:product_modifiers;joinForeignKey:ProductID;joinReferences:ModifierID"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// ModifierDTO is a group of options such as "Size" or "Toppings".
type ModifierDTO struct {
	ID       uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name     string              `gorm:"type:varchar(255);not null"`
	IsActive bool                `gorm:"not null"`
	Options  []ModifierOptionDTO `gorm:"foreignKey:ModifierID;constraint:OnDelete:CASCADE"`
}

func (ModifierDTO) TableName() string {
	return "modifiers"
}

type ModifierOptionDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ModifierID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(255);not null"`
	PriceAdjustment decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	IsActive        bool            `gorm:"not null"`
}

func (ModifierOptionDTO) TableName() string {
	return "modifier_options"
}

// toDomain flattens the modifier groups into the product's option list. An
// option of an inactive modifier counts as inactive.
func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var options []catalog.ModifierOption
	for _, m := range dto.Modifiers {
		for _, o := range m.Options {
			optionID, optionErr := kernel.UUIDFromBytes(o.ID[:])
			if optionErr != nil {
				return nil, optionErr
			}
			options = append(options, catalog.ModifierOption{
				ID:              optionID,
				Name:            o.Name,
				PriceAdjustment: kernel.NewPriceAdjustment(o.PriceAdjustment),
				IsActive:        o.IsActive && m.IsActive,
			})
		}
	}

	stock := catalog.Stock{Tracked: dto.TrackStock}
	if dto.StockQuantity != nil {
		stock.Quantity = *dto.StockQuantity
	}

	return catalog.NewProduct(id, dto.Name, price, dto.IsActive, dto.IsArchived, stock, options)
}
