package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/application/usecases/commands"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/order"
	"github.com/ixasales-prog/IxaSales-sub002/internal/core/ports"
)

func uuidPtr() *kernel.UUID {
	id := kernel.NewUUID()
	return &id
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

// testOrder builds an aggregate restored in the given status with a single
// $10 x 2 line item so transitions and edits behave like production data.
func testOrder(t *testing.T, tenantID kernel.UUID, status order.Status, driverID *kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(),
		testMoney(t, "10.00"), 2,
		kernel.ZeroMoney(), kernel.ZeroMoney(),
	)
	require.NoError(t, err)

	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:             kernel.NewUUID(),
		TenantID:       tenantID,
		OrderNumber:    "ORD-2024-0042",
		Status:         status,
		PaymentStatus:  order.PaymentStatusUnpaid,
		SubtotalAmount: testMoney(t, "20.00"),
		DiscountAmount: kernel.ZeroMoney(),
		TaxAmount:      kernel.ZeroMoney(),
		TotalAmount:    testMoney(t, "20.00"),
		PaidAmount:     kernel.ZeroMoney(),
		DriverID:       driverID,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
		Items:          []*order.Item{item},
	})
	require.NoError(t, err)
	return aggregate
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIDs(
	ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOverdueDelivering(
	ctx context.Context, asOf time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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

type MockDriverValidator struct{ mock.Mock }

func (m *MockDriverValidator) IsDriver(ctx context.Context, tenantID, driverID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, driverID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) PublishStatusChanged(
	ctx context.Context, event ports.StatusChangedEvent,
) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) PublishDeliveryOverdue(
	ctx context.Context, event ports.DeliveryOverdueEvent,
) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
