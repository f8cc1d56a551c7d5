// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items and delivery
	// record to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no order exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Claim atomically binds riderID to the order iff the order is still in
	// ready status with no rider assigned. The predicate must be evaluated by
	// the backing store in a single conditional write: a read-then-write
	// sequence admits a race between competing riders.
	//
	// Returns AlreadyClaimedError if the order exists but the predicate does
	// not hold, and ObjectNotFoundError if the order does not exist.
	Claim(ctx context.Context, orderID, riderID kernel.UUID, now time.Time) error
}
