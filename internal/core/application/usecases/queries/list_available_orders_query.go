package queries

import (
	"errors"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery retrieves a rider's work view: the competable
// pool of ready, unassigned orders plus the orders already bound to that
// rider.
type ListAvailableOrdersQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAvailableOrdersQuery creates an availability query for a rider.
func NewListAvailableOrdersQuery(riderID kernel.UUID) (ListAvailableOrdersQuery, error) {
	if err := riderID.Validate(); err != nil {
		return ListAvailableOrdersQuery{}, err
	}

	return ListAvailableOrdersQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

// RiderID returns the rider the view is built for.
func (q ListAvailableOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}

// ListAvailableOrdersQueryResponse is one order in the rider's view.
// Mine reports whether the order is already bound to the querying rider;
// false means it is still up for grabs.
type ListAvailableOrdersQueryResponse struct {
	ID        kernel.UUID
	Status    string
	Total     int64
	Mine      bool
	CreatedAt time.Time
}
