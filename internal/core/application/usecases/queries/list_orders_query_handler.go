package queries

import (
	"context"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, customerID.Bytes())
	}

	sql := `
		SELECT
			id,
			order_number,
			customer_id,
			status,
			total,
			courier_id,
			created_at
		FROM orders`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	if query.Status() != nil {
		sql += " ORDER BY created_at ASC, order_number ASC"
	} else {
		sql += " ORDER BY created_at DESC, order_number DESC"
	}
	sql += " LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0, query.Limit())
	for rows.Next() {
		var (
			row        ListOrdersQueryResponse
			id         uuid.UUID
			customerID uuid.UUID
			courierID  *uuid.UUID
			status     string
			total      decimal.Decimal
		)

		err = rows.Scan(&id, &row.Number, &customerID, &status, &total, &courierID, &row.CreatedAt)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if courierID != nil {
			courier, idErr := kernel.UUIDFromBytes(courierID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.CourierID = &courier
		}
		if row.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if row.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
