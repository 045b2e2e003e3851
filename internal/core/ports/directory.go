package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/staff"
)

// ProductCatalog is the read side of the menu.
type ProductCatalog interface {
	// GetProducts returns the products with the given identifiers together with
	// their modifier options. A missing product yields errs.ObjectNotFoundError.
	GetProducts(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.Product, error)
}

// StaffDirectory looks up users by identifier.
type StaffDirectory interface {
	// Get returns errs.ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*staff.User, error)
}
