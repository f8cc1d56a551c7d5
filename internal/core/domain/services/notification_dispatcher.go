package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/ports"
)

// ErrNotificationDispatcherIsNotConstructed is returned when a
// NotificationDispatcher was not created via its constructor.
var ErrNotificationDispatcherIsNotConstructed = errors.New(
	"NotificationDispatcher must be created via NewNotificationDispatcher constructor")

// NotificationDispatcher materializes rendered templates into persisted
// notifications. Emission is fire-and-forget: the causing state transition
// has already committed, so persistence failures are logged and swallowed
// rather than propagated to the caller.
type NotificationDispatcher struct {
	repository ports.NotificationRepository
	logger     *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher over the given repository.
func NewNotificationDispatcher(
	repository ports.NotificationRepository,
	logger *slog.Logger,
) (*NotificationDispatcher, error) {
	if repository == nil {
		return nil, errors.New("notification repository is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationDispatcher{
		repository: repository,
		logger:     logger,
	}, nil
}

// Emit builds a notification from the rendered template and persists it.
// On any failure the error is logged and a nil notification is returned;
// the caller's transition is never affected.
func (d *NotificationDispatcher) Emit(ctx context.Context, result notification.TemplateResult) *notification.Notification {
	aggregate, err := notification.NewNotification(kernel.NewUUID(), result, time.Now().UTC())
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to build notification",
			slog.String("type", result.Type.String()),
			slog.Any("error", err))
		return nil
	}

	if err := d.repository.Add(ctx, aggregate); err != nil {
		d.logger.ErrorContext(ctx, "failed to persist notification",
			slog.String("type", result.Type.String()),
			slog.String("recipientId", result.RecipientID.String()),
			slog.Any("error", err))
		return nil
	}

	return aggregate
}
