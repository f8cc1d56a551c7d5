package ports

import (
	"context"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the stock ledger.
type ProductRepository interface {
	// Get retrieves a ledger entry by product id.
	// Returns ObjectNotFoundError if no product exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Decrement removes qty units from the product's quantity on hand in a
	// single conditional write guarded by the floor: a decrement that would
	// take the quantity below zero fails with InsufficientStockError and
	// leaves the ledger untouched.
	Decrement(ctx context.Context, id kernel.UUID, qty int) error

	// Increment returns qty units to the product's quantity on hand. Used by
	// the restock-on-cancel policy when enabled.
	Increment(ctx context.Context, id kernel.UUID, qty int) error
}
