package commands_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"

	"github.com/shopspring/decimal"
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

func (m *MockOrderRepository) GetBySourceMessageID(ctx context.Context, messageID string) (*order.Order, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatusAndDeliveryDateRange(ctx context.Context, status order.Status, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, status, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByMonthYear(ctx context.Context, month, year int) ([]*order.Order, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDueForPlantReminder(ctx context.Context, sentBefore time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, sentBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDueForLogisticsReminder(ctx context.Context, deliveryDate time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, deliveryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingPaymentProof(ctx context.Context, asOf time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
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

type MockMailbox struct{ mock.Mock }

func (m *MockMailbox) GetUnreadMessages(ctx context.Context, query string) ([]ports.MessageRef, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.MessageRef), args.Error(1)
}

func (m *MockMailbox) GetMessage(ctx context.Context, id string) (*ports.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Message), args.Error(1)
}

func (m *MockMailbox) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMailbox) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type MockCalendar struct{ mock.Mock }

func (m *MockCalendar) CreateDeliveryEvent(ctx context.Context, event ports.DeliveryEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

func (m *MockCalendar) UpdateEventDescription(ctx context.Context, eventID, description string) error {
	args := m.Called(ctx, eventID, description)
	return args.Error(0)
}

type MockPDFTextExtractor struct{ mock.Mock }

func (m *MockPDFTextExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// expectUoW wires the usual Begin / OrderRepository / Rollback sequence a
// handler runs against one unit of work.
func expectUoW(uow *MockOrderUoW, repo *MockOrderRepository) {
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
}

func mustItem(t *testing.T, product string, quantity int, price string) *order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(product, quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

// testOrder builds an order in Received status with one line item.
func testOrder(t *testing.T, details order.Details) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"PED-2025-06-00001",
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		[]*order.LineItem{mustItem(t, "Caja A", 10, "150.00")},
		details,
	)
	require.NoError(t, err)
	return aggregate
}

// orderSentToPlant advances a fresh order to SentToPlant.
func orderSentToPlant(t *testing.T, sentAt time.Time) *order.Order {
	t.Helper()
	aggregate := testOrder(t, order.Details{DeliveryPlace: "Depósito Norte"})
	require.NoError(t, aggregate.AttachCalendarEvent("evt-1"))
	require.NoError(t, aggregate.MarkSentToPlant(sentAt))
	return aggregate
}
