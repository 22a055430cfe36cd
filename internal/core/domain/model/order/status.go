package order

import (
	"fmt"

	"fleetboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle is linear:
//
//	PENDING ──> ASSIGNED ──> IN_TRANSIT ──> DELIVERED
//
// Transitions are deliberately not enforced as strictly sequential: a direct
// status update may write any valid status value, and the aggregate reacts by
// stamping the matching milestone timestamp. Only driver assignment checks the
// current status (DELIVERED is terminal for assignment). Keeping the update
// path permissive is a product decision carried over from the dashboard's
// original behavior, not an oversight.
type Status string

const (
	// Pending is the initial status: the order awaits driver assignment.
	Pending Status = "PENDING"

	// Assigned indicates a driver has been bound to the order.
	Assigned Status = "ASSIGNED"

	// InTransit indicates the driver is on the way to the customer.
	InTransit Status = "IN_TRANSIT"

	// Delivered indicates the order reached the customer. Terminal for
	// assignment purposes: a delivered order can never be (re)assigned.
	Delivered Status = "DELIVERED"
)

// AllStatuses returns every valid status in lifecycle order.
// Used to zero-fill per-status counts so no key is ever omitted.
func AllStatuses() []Status {
	return []Status{Pending, Assigned, InTransit, Delivered}
}

// StatusFromString parses and validates a status value from external input.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the four valid values.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, InTransit, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
}

// ValidateAssign checks whether a driver may be assigned to an order in this
// status. Every status except Delivered allows assignment.
func (s Status) ValidateAssign() error {
	if s == Delivered {
		return errs.NewStateConflictError("assign driver", "order already delivered")
	}
	return nil
}
