package commands_test

import (
	"testing"
	"time"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

func mustNotification(t *testing.T, recipientID kernel.UUID) *notification.Notification {
	t.Helper()
	result := notification.OrderReadyTemplate(recipientID, kernel.NewUUID())
	n, err := notification.NewNotification(kernel.NewUUID(), result, time.Now().UTC())
	require.NoError(t, err)
	return n
}

func TestMarkNotificationReadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	recipientID := kernel.NewUUID()
	target := mustNotification(t, recipientID)

	cmd, err := commands.NewMarkNotificationReadCommand(target.ID(), recipientID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		notificationRepo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, target.Read())
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_WrongActor(t *testing.T) {
	ctx := t.Context()

	target := mustNotification(t, kernel.NewUUID())
	impostorID := kernel.NewUUID()

	cmd, err := commands.NewMarkNotificationReadCommand(target.ID(), impostorID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.False(t, target.Read())
	uow.AssertNotCalled(t, "Commit", ctx)
}
