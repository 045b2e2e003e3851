package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetProducts(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*catalog.Product), args.Error(1)
}

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e ports.OrderEvent) bool { return e.Type == eventType })
}

var testNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

// storedOrder builds an order as the repository would load it.
func storedOrder(t *testing.T, status order.Status, version int) *order.Order {
	t.Helper()

	number, err := order.NewNumber(testNow, 1)
	require.NoError(t, err)
	address, err := kernel.NewAddress("Lenina st. 1, apt 5")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+7 912 345 67 89")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Borscht", kernel.MustMoney("250"), 2, nil, nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:            kernel.NewUUID(),
		Number:        number,
		CustomerID:    kernel.NewUUID(),
		Status:        status,
		Version:       version,
		PaymentMethod: order.PaymentCash,
		PaymentStatus: order.PaymentPending,
		Totals: order.Totals{
			Subtotal:    item.Total(),
			DeliveryFee: kernel.ZeroMoney(),
			Discount:    kernel.ZeroMoney(),
			Total:       item.Total(),
		},
		Delivery:    order.Delivery{Address: address, Phone: phone},
		StatusTimes: map[order.Status]time.Time{},
		Items:       []order.Item{item},
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	})
	require.NoError(t, err)
	return o
}
