package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle returns an entry for every requested status, zero included.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.Statuses()
	names := make([]string, 0, len(statuses))
	counts := make(map[order.Status]int64, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE status IN ?
		GROUP BY status
	`, names).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err = rows.Scan(&name, &count); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(name)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
