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

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

func mustPendingRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Bob Wilson", "+63-917-555-0102", "", "")
	require.NoError(t, err)
	return r
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	claimant := mustActiveRider(t, "Jane Smith")
	claimantID := claimant.ID()

	claimed := mustReadyOrder(t)
	require.NoError(t, claimed.AssignRider(claimantID, time.Now().UTC()))

	cmd, err := commands.NewClaimOrderCommand(claimed.ID(), claimantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, claimantID).Return(claimant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Claim", ctx, claimed.ID(), claimantID, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		orderRepo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Emit", ctx, mock.MatchedBy(func(result notification.TemplateResult) bool {
		return result.Type == notification.TypeRiderAssigned
	})).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, dispatcher, publisher)
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.RiderReceived, got.Status())

	orderRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_IneligibleRider(t *testing.T) {
	ctx := t.Context()

	pending := mustPendingRider(t)
	pendingID := pending.ID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(orderID, pendingID)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, pendingID).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)

	handler := commands.NewClaimOrderCommandHandler(factory, dispatcher, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "OrderRepository")
	dispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_RaceLost(t *testing.T) {
	ctx := t.Context()

	claimant := mustActiveRider(t, "Jane Smith")
	claimantID := claimant.ID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(orderID, claimantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, claimantID).Return(claimant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Claim", ctx, orderID, claimantID, mock.AnythingOfType("time.Time")).
			Return(errs.NewAlreadyClaimedError(orderID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)

	handler := commands.NewClaimOrderCommandHandler(factory, dispatcher, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", ctx)
	dispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	claimant := mustActiveRider(t, "Jane Smith")
	claimantID := claimant.ID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewClaimOrderCommand(orderID, claimantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, claimantID).Return(claimant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Claim", ctx, orderID, claimantID, mock.AnythingOfType("time.Time")).
			Return(errs.NewObjectNotFoundError("orderID", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, new(MockDispatcher), new(MockPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
