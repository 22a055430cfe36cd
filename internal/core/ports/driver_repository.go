package ports

import (
	"context"

	"fleetboard/internal/core/domain/model/driver"
	"fleetboard/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// Returns an object-not-found error if the driver does not exist.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an object-not-found error if the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Delete removes a driver.
	// Returns an object-not-found error if the driver does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every driver. Used by the seed/reset workflow inside
	// a transaction.
	DeleteAll(ctx context.Context) error
}
