// Package ports defines the contracts between the domain layer and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an object-not-found error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order.
	// Returns an object-not-found error if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every order. Used by the seed/reset workflow inside
	// a transaction.
	DeleteAll(ctx context.Context) error

	// ClearDriver nulls the driver reference on every order assigned to the
	// given driver. Used when a driver is deleted so orders never point at a
	// missing driver.
	ClearDriver(ctx context.Context, driverID kernel.UUID) error
}
