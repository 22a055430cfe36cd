package commands

import (
	"errors"

	"fleetboard/internal/core/domain/model/driver"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver.
type CreateDriverCommand struct {
	name      string
	available bool

	isConstructed bool
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(name string, available bool) (CreateDriverCommand, error) {
	if err := driver.ValidateName(name); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		name:          name,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateDriverCommandIsNotConstructed
	}
	return nil
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Available returns the driver's initial availability flag.
func (c CreateDriverCommand) Available() bool {
	return c.available
}
