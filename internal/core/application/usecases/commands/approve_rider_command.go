package commands

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrApproveRiderCommandIsNotConstructed = errors.New(
	"ApproveRiderCommand must be created via NewApproveRiderCommand constructor",
)

// ApproveRiderCommand represents an admin's approval of a pending rider.
type ApproveRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveRiderCommand creates an approval command.
func NewApproveRiderCommand(riderID kernel.UUID) (ApproveRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return ApproveRiderCommand{}, err
	}

	return ApproveRiderCommand{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRiderCommand) Validate() error {
	return c.guard.Validate(ErrApproveRiderCommandIsNotConstructed)
}

// RiderID returns the rider being approved.
func (c ApproveRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
