package commands

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrDeactivateRiderCommandIsNotConstructed = errors.New(
	"DeactivateRiderCommand must be created via NewDeactivateRiderCommand constructor",
)

// DeactivateRiderCommand represents an admin taking a rider out of the pool.
type DeactivateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateRiderCommand creates a deactivation command.
func NewDeactivateRiderCommand(riderID kernel.UUID) (DeactivateRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return DeactivateRiderCommand{}, err
	}

	return DeactivateRiderCommand{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateRiderCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateRiderCommandIsNotConstructed)
}

// RiderID returns the rider being deactivated.
func (c DeactivateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
