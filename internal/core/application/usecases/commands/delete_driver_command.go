package commands

import (
	"errors"

	"fleetboard/internal/core/domain/model/kernel"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents a request to remove a driver from the fleet.
type DeleteDriverCommand struct {
	driverID kernel.UUID

	isConstructed bool
}

// NewDeleteDriverCommand creates a command to remove a driver.
func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}

	return DeleteDriverCommand{
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteDriverCommandIsNotConstructed
	}
	return nil
}

// DriverID returns the target driver's identifier.
func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
