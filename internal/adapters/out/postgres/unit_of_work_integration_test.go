package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().NoError(uow.Rollback(ctx), "Rollback without a transaction is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrderAndLog() {
	ctx := context.Background()
	o := pgtest.NewOrder(suite.T(), 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Number().String(), loaded.Number().String())
	suite.Equal(int64(1), suite.count("order_status_logs"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrderAndLog() {
	ctx := context.Background()
	o := pgtest.NewOrder(suite.T(), 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(int64(0), suite.count("orders"))
	suite.Equal(int64(0), suite.count("order_status_logs"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConflictRollsBackStatusAndLog() {
	ctx := context.Background()
	o := pgtest.NewOrder(suite.T(), 3)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	stale, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	fresh, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(fresh.TransitionTo(order.Confirmed, nil, nil, pgtest.Now))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Update(ctx, fresh))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(stale.Cancel(kernel.NewUUID(), "customer called", pgtest.Now))
	err = uow.OrderRepository().Update(ctx, stale)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)
	suite.Require().NoError(uow.Rollback(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
	suite.Equal(2, loaded.Version())
	suite.Equal(int64(2), suite.count("order_status_logs"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsRepeatableAndAddsChecks() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.database.DB, zap.NewNop()))

	var checks int64
	err := suite.database.DB.Raw(
		"SELECT count(*) FROM pg_constraint WHERE conname IN ?",
		[]string{
			"chk_orders_status", "chk_orders_version", "chk_orders_total",
			"chk_order_items_quantity", "chk_daily_counters_counter",
		},
	).Scan(&checks).Error
	suite.Require().NoError(err)
	suite.Equal(int64(5), checks)
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&n).Error)
	return n
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
