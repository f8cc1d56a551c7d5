// Package queries contains read-only operations over the persisted state.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database and return flat response structs, bypassing the
// aggregates.
package queries

import (
	"errors"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally filtered by customer and
// archived flag. A nil filter means "any".
type ListOrdersQuery struct {
	customerID *kernel.UUID
	archived   *bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query.
func NewListOrdersQuery(customerID *kernel.UUID, archived *bool) (ListOrdersQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		customerID: customerID,
		archived:   archived,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, if any.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Archived returns the archived filter, if any.
func (q ListOrdersQuery) Archived() *bool {
	return q.archived
}

// ListOrdersQueryResponse is one order row in the listing.
// CustomerStatus is the customer-facing projection: orders awaiting
// administrative delivery confirmation already read "delivered".
type ListOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	Status         string
	CustomerStatus string
	Total          int64
	Archived       bool
	TrackingNumber string
	CreatedAt      time.Time
}
