package ports

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns ObjectNotFoundError if no notification exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// DeleteReadOlderThan removes read notifications created before cutoff
	// and reports how many rows were removed. Used by the cleanup job.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
