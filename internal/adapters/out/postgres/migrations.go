package postgres

import (
	"fmt"

	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/counterrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/staffrepo"
	"foodorder/internal/core/domain/model/order"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&staffrepo.UserDTO{},
		&catalogrepo.ModifierDTO{},
		&catalogrepo.ModifierOptionDTO{},
		&catalogrepo.ProductDTO{},
		&counterrepo.DailyCounterDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusLogDTO{},
	}
}

type checkConstraint struct {
	table string
	name  string
	expr  string
}

func checkConstraints() []checkConstraint {
	statuses := ""
	for i, s := range order.Statuses() {
		if i > 0 {
			statuses += ", "
		}
		statuses += pq.QuoteLiteral(s.String())
	}

	return []checkConstraint{
		{table: "orders", name: "chk_orders_status", expr: "status IN (" + statuses + ")"},
		{table: "orders", name: "chk_orders_version", expr: "version >= 1"},
		{table: "orders", name: "chk_orders_total", expr: "total = subtotal + delivery_fee - discount_amount AND total >= 0"},
		{table: "order_items", name: "chk_order_items_quantity", expr: fmt.Sprintf(
			"quantity BETWEEN %d AND %d", order.MinItemQuantity, order.MaxItemQuantity)},
		{table: "daily_counters", name: "chk_daily_counters_counter", expr: "counter >= 0"},
	}
}

// Migrate creates or updates the schema and adds the check constraints GORM
// tags cannot express. It is safe to run repeatedly.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger = logger.With(zap.String("component", "migrations"))

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, c := range checkConstraints() {
		var exists bool
		err := db.Raw(
			"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", c.name,
		).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("look up constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)",
			pq.QuoteIdentifier(c.table), pq.QuoteIdentifier(c.name), c.expr)
		if err = db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
		logger.Info("check constraint added", zap.String("table", c.table), zap.String("constraint", c.name))
	}

	logger.Info("schema is up to date", zap.Int("tables", len(Models())))
	return nil
}
