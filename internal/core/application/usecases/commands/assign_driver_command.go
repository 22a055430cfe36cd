package commands

import (
	"errors"

	"fleetboard/internal/core/domain/model/kernel"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign a driver to an order.
type AssignDriverCommand struct {
	orderID  kernel.UUID
	driverID kernel.UUID

	isConstructed bool
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(orderID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID:       orderID,
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	if !c.isConstructed {
		return ErrAssignDriverCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the target order's identifier.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
