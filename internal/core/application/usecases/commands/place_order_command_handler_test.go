package commands_test

import (
	"context"
	"testing"
	"time"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/domain/model/product"
	"pharmadelivery/internal/core/domain/model/rider"
	"pharmadelivery/internal/core/ports"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared mocks for the command handler tests in this package.

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

func (m *MockOrderRepository) Claim(ctx context.Context, orderID, riderID kernel.UUID, now time.Time) error {
	args := m.Called(ctx, orderID, riderID, now)
	return args.Error(0)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Decrement(ctx context.Context, id kernel.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *MockProductRepository) Increment(ctx context.Context, id kernel.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Emit(ctx context.Context, result notification.TemplateResult) *notification.Notification {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*notification.Notification)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

func templateOfType(expected notification.Type) interface{} {
	return mock.MatchedBy(func(result notification.TemplateResult) bool {
		return result.Type == expected
	})
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	entry, err := product.NewProduct(productID, "Paracetamol 500mg", 1500, 10)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, kernel.NewUUID(),
		[]commands.PlaceOrderItem{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(entry, nil).Once(),
		productRepo.On("Decrement", ctx, productID, 2).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, templateOfType(notification.TypeOrderPlaced)).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, dispatcher, publisher)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, placed.ID().IsEqual(orderID))
	assert.Equal(t, int64(3000), placed.Subtotal())
	assert.Equal(t, int64(360), placed.Tax())
	assert.Equal(t, int64(3360), placed.Total())
	assert.Equal(t, order.Pending, placed.Status())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	entry, err := product.NewProduct(productID, "Paracetamol 500mg", 1500, 1)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]commands.PlaceOrderItem{{ProductID: productID, Quantity: 5}})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(entry, nil).Once(),
		productRepo.On("Decrement", ctx, productID, 5).
			Return(errs.NewInsufficientStockError(productID.String(), 5, 1)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)

	handler := commands.NewPlaceOrderCommandHandler(factory, dispatcher, publisher)
	placed, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Nil(t, placed)

	uow.AssertNotCalled(t, "Commit", ctx)
	dispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockPlacementUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, new(MockDispatcher), new(MockPublisher))

	_, err := handler.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_NotificationFailureDoesNotFailPlacement(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	entry, err := product.NewProduct(productID, "Ibuprofen 200mg", 900, 3)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]commands.PlaceOrderItem{{ProductID: productID, Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(entry, nil).Once(),
		productRepo.On("Decrement", ctx, productID, 1).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Dispatcher absorbs its own failure and returns nil; publisher errors
	// are ignored by the handler.
	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, templateOfType(notification.TypeOrderPlaced)).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).
		Return(assert.AnError).
		Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, dispatcher, publisher)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
}
