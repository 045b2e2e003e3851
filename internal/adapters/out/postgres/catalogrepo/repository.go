package catalogrepo

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductCatalog implements ports.ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Save stores a product with its modifier links. Menu management lives elsewhere;
// this exists for seeding and tests.
func (c *GormProductCatalog) Save(ctx context.Context, product *ProductDTO) error {
	return c.db.WithContext(ctx).Save(product).Error
}

// GetProducts loads all requested products in one query. The first identifier
// without a row yields errs.ObjectNotFoundError.
func (c *GormProductCatalog) GetProducts(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*catalog.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if len(raw) > 0 {
		err := c.db.WithContext(ctx).
			Preload("Modifiers.Options").
			Where("id IN ?", raw).
			Find(&dtos).Error
		if err != nil {
			return nil, err
		}
	}

	products := make(map[kernel.UUID]*catalog.Product, len(dtos))
	for _, dto := range dtos {
		product, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[product.ID()] = product
	}

	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
	}

	return products, nil
}
