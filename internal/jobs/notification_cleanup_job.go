package jobs

import (
	"context"
	"log/slog"
	"time"

	"pharmadelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// notificationRetention is how long read notifications are kept.
const notificationRetention = 30 * 24 * time.Hour

// NotificationCleanupJob purges read notifications past the retention window.
// Runs once a day; unread notifications are never deleted.
type NotificationCleanupJob struct {
	repository ports.NotificationRepository
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationCleanupJob creates a new cleanup job over the given repository.
func NewNotificationCleanupJob(repository ports.NotificationRepository, logger *slog.Logger) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		repository: repository,
		cron:       cron.New(),
		logger:     logger.With("component", "notification_cleanup_job"),
	}
}

// Start schedules the cleanup to run daily at 03:00.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-notificationRetention)

		deleted, err := j.repository.DeleteReadOlderThan(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", err)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Purged read notifications",
				"deleted", deleted, "cutoff", cutoff)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running daily)")
	return nil
}

// Stop stops the cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
