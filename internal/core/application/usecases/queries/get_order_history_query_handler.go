package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the entries oldest first. An unknown order is
// errs.ObjectNotFoundError rather than an empty history.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			old_status,
			new_status,
			changed_by_id,
			reason,
			created_at
		FROM order_status_logs
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			entry       GetOrderHistoryQueryResponse
			id          uuid.UUID
			oldStatus   *string
			newStatus   string
			changedByID *uuid.UUID
		)

		err = rows.Scan(&id, &oldStatus, &newStatus, &changedByID, &entry.Reason, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if oldStatus != nil {
			status, statusErr := order.ParseStatus(*oldStatus)
			if statusErr != nil {
				return nil, statusErr
			}
			entry.OldStatus = &status
		}
		if entry.NewStatus, err = order.ParseStatus(newStatus); err != nil {
			return nil, err
		}
		if changedByID != nil {
			actor, idErr := kernel.UUIDFromBytes(changedByID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.ChangedByID = &actor
		}

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
