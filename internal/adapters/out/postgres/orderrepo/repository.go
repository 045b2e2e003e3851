package orderrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Writes run inside db.Transaction, so the order row and its audit entries are
// committed together. Bound to a unit of work transaction, the inner transaction
// becomes a savepoint.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order, its items and its pending audit entries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		return insertLogs(tx, aggregate.PendingLogs())
	})
	if err != nil {
		return err
	}

	aggregate.MarkPersisted()
	return nil
}

// Update writes the mutable columns conditioned on the version the aggregate was
// loaded with:
//
//	UPDATE orders SET ..., version = <new> WHERE id = ? AND version = <expected>
//
// Zero matched rows means another writer got there first, and the audit entries
// are not written either.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.ExpectedVersion()).
			Updates(updateColumns(aggregate))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewConcurrencyConflictError("order", aggregate.ID(), aggregate.ExpectedVersion())
		}
		return insertLogs(tx, aggregate.PendingLogs())
	})
	if err != nil {
		return err
	}

	aggregate.MarkPersisted()
	return nil
}

// Get retrieves an order with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "order_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func insertLogs(tx *gorm.DB, logs []order.StatusLog) error {
	if len(logs) == 0 {
		return nil
	}

	dtos := make([]StatusLogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, logFromDomain(l))
	}
	return tx.Create(&dtos).Error
}
