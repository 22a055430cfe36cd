package commands

import (
	"errors"

	"fleetboard/internal/core/domain/model/driver"
	"fleetboard/internal/core/domain/model/kernel"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a partial update of a driver. Nil fields are
// absent and left untouched. Toggling availability never touches existing
// assignments; it only gates future ones.
type UpdateDriverCommand struct {
	driverID  kernel.UUID
	name      *string
	available *bool

	isConstructed bool
}

// NewUpdateDriverCommand creates a partial-update command for a driver.
func NewUpdateDriverCommand(driverID kernel.UUID, name *string, available *bool) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}

	if name != nil {
		if err := driver.ValidateName(*name); err != nil {
			return UpdateDriverCommand{}, err
		}
	}

	return UpdateDriverCommand{
		driverID:      driverID,
		name:          name,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateDriverCommandIsNotConstructed
	}
	return nil
}

// DriverID returns the target driver's identifier.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the replacement name, nil when absent.
func (c UpdateDriverCommand) Name() *string {
	return c.name
}

// Available returns the replacement availability flag, nil when absent.
func (c UpdateDriverCommand) Available() *bool {
	return c.available
}
