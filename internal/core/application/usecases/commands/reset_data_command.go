package commands

import "errors"

var ErrResetDataCommandIsNotConstructed = errors.New(
	"ResetDataCommand must be created via NewResetDataCommand constructor",
)

// ResetDataCommand represents a request to wipe all orders and drivers and
// repopulate the database with a fresh demo data set.
type ResetDataCommand struct {
	isConstructed bool
}

// NewResetDataCommand creates a command to reset the demo data.
func NewResetDataCommand() (ResetDataCommand, error) {
	return ResetDataCommand{isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetDataCommand) Validate() error {
	if !c.isConstructed {
		return ErrResetDataCommandIsNotConstructed
	}
	return nil
}
