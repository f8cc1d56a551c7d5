// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit side effects (notifications, events).
package commands

import (
	"context"

	"pharmadelivery/internal/core/domain/model/notification"
	"pharmadelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// ProductRepoFactory provides access to the stock ledger within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// NotificationRepoFactory provides access to the notification repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PlacementUoW manages the order-placement transaction: the order row and
	// all its stock decrements commit or roll back together.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// FulfillmentUoW manages lifecycle transitions. Transitions touch the
	// order, may look up the rider (eligibility, display name), and may
	// return stock on cancellation.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		ProductRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// ClaimUoW manages the rider-claim transaction.
	ClaimUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// NotificationDispatcher emits fire-and-forget notifications after a
// transition has committed. Implementations absorb their own failures.
type NotificationDispatcher interface {
	Emit(ctx context.Context, result notification.TemplateResult) *notification.Notification
}
