// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required by the service.
//
// # Available Jobs
//
// 1. NotificationCleanupJob - Runs daily at 03:00 to purge read notifications
// older than the 30-day retention window. Unread notifications are kept
// indefinitely.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notificationRepository, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
