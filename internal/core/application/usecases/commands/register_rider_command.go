package commands

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand represents a rider's self-registration request.
// Registered riders start in pending status and cannot claim orders until
// approved.
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID      kernel.UUID
	name         string
	phone        string
	vehicleType  string
	vehiclePlate string

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a registration command.
func NewRegisterRiderCommand(
	riderID kernel.UUID,
	name, phone, vehicleType, vehiclePlate string,
) (RegisterRiderCommand, error) {
	cmd := RegisterRiderCommand{
		vehicleType:  vehicleType,
		vehiclePlate: vehiclePlate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// RiderID returns the identifier assigned to the new rider.
func (c RegisterRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the rider's display name.
func (c RegisterRiderCommand) Name() string {
	return c.name
}

// Phone returns the rider's contact number.
func (c RegisterRiderCommand) Phone() string {
	return c.phone
}

// VehicleType returns the rider's vehicle type, if provided.
func (c RegisterRiderCommand) VehicleType() string {
	return c.vehicleType
}

// VehiclePlate returns the rider's plate number, if provided.
func (c RegisterRiderCommand) VehiclePlate() string {
	return c.vehiclePlate
}

func (c *RegisterRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RegisterRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterRiderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
