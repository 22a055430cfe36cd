package driver

import (
	"errors"
	"time"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/pkg/errs"
)

// maxNameLen is the limit on a driver's display name.
const maxNameLen = 255

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through the NewDriver or RestoreDriver constructors.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Driver represents a fleet member who can be assigned to deliver orders.
// The availability flag is the sole gate the assignment workflow consults:
// unavailable drivers never receive new assignments, though they may keep
// orders assigned before they went unavailable.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID

	// name is the driver's display name
	name string

	// available reports whether the driver can take new assignments
	available bool

	// createdAt is the registration time
	createdAt time.Time

	// isConstructed ensures the driver was created via a constructor
	isConstructed bool
}

// NewDriver registers a new driver. Name must be non-empty and within the
// length limit; availability defaults are the caller's concern (the registry
// registers drivers as available unless told otherwise).
func NewDriver(id kernel.UUID, name string, available bool, createdAt time.Time) (*Driver, error) {
	d := &Driver{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver aggregate from persistence.
func RestoreDriver(id kernel.UUID, name string, available bool, createdAt time.Time) (*Driver, error) {
	return NewDriver(id, name, available, createdAt)
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsAvailable reports whether the driver can take new assignments.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// CreatedAt returns the registration time.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// Rename replaces the display name, applying registration-time validation.
func (d *Driver) Rename(name string) error {
	return d.setName(name)
}

// SetAvailability flips the availability flag. Any number of flips is allowed.
func (d *Driver) SetAvailability(available bool) {
	d.available = available
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	d.name = name
	return nil
}

func (d *Driver) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	d.createdAt = createdAt
	return nil
}
