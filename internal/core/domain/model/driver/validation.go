package driver

import "fleetboard/internal/pkg/errs"

// ValidateName checks the display name requirement and length limit. Shared
// with the command layer so input is rejected before a transaction opens.
func ValidateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLen {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLen)
	}
	return nil
}
