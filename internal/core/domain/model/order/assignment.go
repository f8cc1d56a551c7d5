package order

import (
	"pharmadelivery/internal/core/domain/model/kernel"
)

// Assignment is an explicit tagged state for rider binding: either Unassigned
// or AssignedTo(riderID). It replaces a bare nullable rider reference so the
// "at most one rider per order" invariant lives in the type system rather
// than in a convention around a nil pointer.
//
// The zero value is Unassigned, which is a valid state.
type Assignment struct {
	riderID *kernel.UUID
}

// Unassigned returns the empty assignment.
func Unassigned() Assignment {
	return Assignment{}
}

// AssignedTo returns an assignment bound to the given rider.
// The rider ID must be a constructed UUID.
func AssignedTo(riderID kernel.UUID) (Assignment, error) {
	if err := riderID.Validate(); err != nil {
		return Assignment{}, err
	}
	return Assignment{riderID: &riderID}, nil
}

// IsAssigned reports whether a rider is bound.
func (a Assignment) IsAssigned() bool {
	return a.riderID != nil
}

// RiderID returns the bound rider's ID and true, or a zero UUID and false
// when unassigned.
func (a Assignment) RiderID() (kernel.UUID, bool) {
	if a.riderID == nil {
		return kernel.UUID{}, false
	}
	return *a.riderID, true
}

// IsHeldBy reports whether the assignment is bound to exactly this rider.
func (a Assignment) IsHeldBy(riderID kernel.UUID) bool {
	return a.riderID != nil && a.riderID.IsEqual(riderID)
}
