package ports

import (
	"context"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a newly registered rider.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by its unique identifier.
	// Returns ObjectNotFoundError if no rider exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}
