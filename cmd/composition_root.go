package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/in/http/api"
	"foodorder/internal/adapters/out/events"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/counterrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/staffrepo"
	"foodorder/internal/adapters/out/pricing"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot builds every component once. Capability selection (events
// backend, pricing policies) happens here and nowhere else.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
	pricer     *services.OrderPricer
	closers    []io.Closer
}

func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(location),
	}

	if err = c.initPublisher(ctx); err != nil {
		return nil, err
	}
	if err = c.initPricer(); err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) initPublisher(ctx context.Context) error {
	var publisher ports.OrderEventPublisher

	switch c.cfg.EventsBackend {
	case EventsBackendKafka:
		kafka := events.NewKafkaPublisher(c.cfg.KafkaBrokers, c.cfg.KafkaOrderEventsTopic)
		c.closers = append(c.closers, kafka)
		publisher = kafka
	case EventsBackendRedis:
		redis, err := events.NewRedisPublisher(ctx,
			c.cfg.RedisAddr, c.cfg.RedisPassword, c.cfg.RedisDB, c.cfg.RedisOrderEventsChannel)
		if err != nil {
			return fmt.Errorf("connect events redis: %w", err)
		}
		c.closers = append(c.closers, redis)
		publisher = redis
	default:
		publisher = events.NewNopPublisher()
	}

	c.logger.Info("Order events backend selected", zap.String("backend", c.cfg.EventsBackend))
	c.publisher = events.NewLoggingPublisher(publisher, c.logger)
	return nil
}

func (c *CompositionRoot) initPricer() error {
	var deliveryFee services.DeliveryFeePolicy = pricing.FreeDelivery{}

	if c.cfg.FeatureDeliveryFee {
		fee, err := kernel.MoneyFromString(c.cfg.DeliveryFlatFee)
		if err != nil {
			return fmt.Errorf("DELIVERY_FLAT_FEE: %w", err)
		}

		var freeFrom *kernel.Money
		if c.cfg.DeliveryFreeThreshold != "" {
			threshold, err := kernel.MoneyFromString(c.cfg.DeliveryFreeThreshold)
			if err != nil {
				return fmt.Errorf("DELIVERY_FREE_THRESHOLD: %w", err)
			}
			freeFrom = &threshold
		}

		flat, err := pricing.NewFlatDeliveryFee(fee, freeFrom)
		if err != nil {
			return fmt.Errorf("delivery fee: %w", err)
		}
		deliveryFee = flat
	}

	if c.cfg.FeaturePromoCodes {
		c.logger.Warn("Promo codes are enabled but no promo provider is configured, discounts stay at zero")
	}

	pricer, err := services.NewOrderPricer(deliveryFee, pricing.NoDiscount{})
	if err != nil {
		return err
	}
	c.pricer = pricer
	return nil
}

// Close releases the event publisher connections.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			c.logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
	c.closers = nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		catalogrepo.NewGormProductCatalog(c.gormDB),
		c.pricer,
		counterrepo.NewGormOrderNumberSequence(c.gormDB),
		c.clock,
		c.publisher,
	)
}

func (c *CompositionRoot) CreateTransitionStatusCommandHandler() commands.TransitionStatusCommandHandler {
	return commands.NewTransitionStatusCommandHandler(c.orderUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(
		c.orderUoWFactory(),
		staffrepo.NewGormStaffDirectory(c.gormDB),
		c.clock,
		c.publisher,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

// CreateRouter wires the HTTP adapter to the use case handlers.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		TransitionStatus: c.CreateTransitionStatusCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		AssignCourier:    c.CreateAssignCourierCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrderByNumber: c.CreateGetOrderByNumberQueryHandler(),
		GetOrderStatus:   c.CreateGetOrderStatusQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		GetOrderHistory:  c.CreateGetOrderHistoryQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, swagger, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOrderStatsJob(c.CreateCountOrdersByStatusQueryHandler(), c.cfg.StatsJobSchedule, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
