// Package rider provides the Rider aggregate: the pool of delivery agents
// competing for ready orders. Riders self-register into pending status and
// become active only through administrative approval; inactive and pending
// riders can neither claim nor be assigned orders.
package rider

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider was not created
	// through NewRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")

	// ErrNameIsRequired is returned when registering a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPhoneIsRequired is returned when registering a rider without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Rider is the aggregate root for a delivery agent.
//
// Lifecycle: self-registration creates the rider in pending status; an admin
// approval moves it to active; deactivation moves it to inactive. Only active
// riders may claim orders or be assigned to them.
type Rider struct {
	id           kernel.UUID
	name         string
	phone        string
	vehicleType  string
	vehiclePlate string
	status       Status

	guard guard.ConstructorGuard
}

// NewRider registers a new rider in pending status.
// Name and phone are required; vehicle fields are optional descriptors.
func NewRider(id kernel.UUID, name, phone, vehicleType, vehiclePlate string) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if phone == "" {
		return nil, ErrPhoneIsRequired
	}

	return &Rider{
		id:           id,
		name:         name,
		phone:        phone,
		vehicleType:  vehicleType,
		vehiclePlate: vehiclePlate,
		status:       StatusPending,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRider reconstructs a Rider from persistence.
func RestoreRider(id kernel.UUID, name, phone, vehicleType, vehiclePlate string, status Status) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Rider{
		id:           id,
		name:         name,
		phone:        phone,
		vehicleType:  vehicleType,
		vehiclePlate: vehiclePlate,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rider was properly constructed.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact number.
func (r *Rider) Phone() string {
	return r.phone
}

// VehicleType returns the rider's vehicle description.
func (r *Rider) VehicleType() string {
	return r.vehicleType
}

// VehiclePlate returns the rider's vehicle plate.
func (r *Rider) VehiclePlate() string {
	return r.vehiclePlate
}

// Status returns the rider's approval status.
func (r *Rider) Status() Status {
	return r.status
}

// CanClaim reports whether the rider may claim or be assigned orders.
func (r *Rider) CanClaim() bool {
	return r.status == StatusActive
}

// Approve applies the administrative approval: pending -> active.
func (r *Rider) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Deactivate takes an active rider out of the pool: active -> inactive.
func (r *Rider) Deactivate() error {
	newStatus, err := r.status.Deactivate()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}
