package commands_test

import (
	"testing"
	"time"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/domain/model/rider"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

func mustOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 2, 1500)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item}, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func mustReadyOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := mustOrder(t)
	now := time.Now().UTC()
	require.NoError(t, aggregate.Confirm(now))
	require.NoError(t, aggregate.Prepare(now))
	require.NoError(t, aggregate.MarkReady(now))
	return aggregate
}

func mustActiveRider(t *testing.T, name string) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), name, "+63-917-555-0101", "motorcycle", "ABC-1234")
	require.NoError(t, err)
	require.NoError(t, r.Approve())
	return r
}

func newTransitionHandler(
	factory commands.FulfillmentUoWFactory,
	dispatcher commands.NotificationDispatcher,
	publisher *MockPublisher,
	restockOnCancel bool,
) commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(factory, dispatcher, publisher, restockOnCancel)
}

func TestTransitionOrderCommandHandler_Handle_Confirm(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t)

	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), commands.RoleAdmin, commands.ActionConfirm, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, templateOfType(notification.TypeOrderConfirmed)).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := newTransitionHandler(factory, dispatcher, publisher, false)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	require.NotNil(t, updated.ConfirmedAt())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_RoleMismatch(t *testing.T) {
	ctx := t.Context()

	riderID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), commands.RoleRider, commands.ActionConfirm, &riderID, "")
	require.NoError(t, err)

	factory := new(MockFulfillmentUoWFactory)
	handler := newTransitionHandler(factory, new(MockDispatcher), new(MockPublisher), false)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionOrderCommandHandler_Handle_StateConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t)
	require.NoError(t, aggregate.Confirm(time.Now().UTC()))

	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), commands.RoleAdmin, commands.ActionConfirm, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)

	handler := newTransitionHandler(factory, dispatcher, publisher, false)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	dispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_AssignRider(t *testing.T) {
	ctx := t.Context()
	aggregate := mustReadyOrder(t)
	assignee := mustActiveRider(t, "Jane Smith")
	assigneeID := assignee.ID()

	cmd, err := commands.NewTransitionOrderCommand(
		aggregate.ID(), commands.RoleAdmin, commands.ActionAssignRider, &assigneeID, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, assigneeID).Return(assignee, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, mock.MatchedBy(func(result notification.TemplateResult) bool {
		return result.Type == notification.TypeRiderAssigned
	})).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := newTransitionHandler(factory, dispatcher, publisher, false)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.RiderReceived, updated.Status())
	boundRider, assigned := updated.Assignment().RiderID()
	require.True(t, assigned)
	assert.True(t, boundRider.IsEqual(assigneeID))
}

func TestTransitionOrderCommandHandler_Handle_AssignPendingRiderForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := mustReadyOrder(t)

	pending, err := rider.NewRider(kernel.NewUUID(), "Bob Wilson", "+63-917-555-0102", "", "")
	require.NoError(t, err)
	pendingID := pending.ID()

	cmd, err := commands.NewTransitionOrderCommand(
		aggregate.ID(), commands.RoleAdmin, commands.ActionAssignRider, &pendingID, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, pendingID).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory, new(MockDispatcher), new(MockPublisher), false)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Ready, aggregate.Status())
}

func TestTransitionOrderCommandHandler_Handle_WrongRiderForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := mustReadyOrder(t)
	owner := mustActiveRider(t, "Jane Smith")
	require.NoError(t, aggregate.AssignRider(owner.ID(), time.Now().UTC()))

	impostorID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(
		aggregate.ID(), commands.RoleRider, commands.ActionConfirmPickup, &impostorID, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory, new(MockDispatcher), new(MockPublisher), false)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.RiderReceived, aggregate.Status())
}

func TestTransitionOrderCommandHandler_Handle_RejectWithRestock(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t)
	item := aggregate.Items()[0]

	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), commands.RoleAdmin, commands.ActionReject, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Increment", ctx, item.ProductID(), item.Quantity()).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, templateOfType(notification.TypeOrderCancelled)).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := newTransitionHandler(factory, dispatcher, publisher, true)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	productRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_RejectWithoutRestock(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t)

	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), commands.RoleAdmin, commands.ActionReject, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, templateOfType(notification.TypeOrderCancelled)).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := newTransitionHandler(factory, dispatcher, publisher, false)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "ProductRepository")
}

func TestTransitionOrderCommandHandler_Handle_PrepareIsSilent(t *testing.T) {
	ctx := t.Context()
	aggregate := mustOrder(t)
	require.NoError(t, aggregate.Confirm(time.Now().UTC()))

	cmd, err := commands.NewTransitionOrderCommand(aggregate.ID(), commands.RoleAdmin, commands.ActionPrepare, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := newTransitionHandler(factory, dispatcher, publisher, false)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	dispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewTransitionOrderCommand(orderID, commands.RoleAdmin, commands.ActionConfirm, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory, new(MockDispatcher), new(MockPublisher), false)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
