// Package driverrepo implements driver persistence over GORM, mapping between
// the Driver aggregate and its relational representation.
package driverrepo

import (
	"time"

	"github.com/google/uuid"

	"fleetboard/internal/core/domain/model/driver"
	"fleetboard/internal/core/domain/model/kernel"
)

// DriverDTO is the database row for a driver.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Available bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database row.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID().Raw(),
		Name:      aggregate.Name(),
		Available: aggregate.IsAvailable(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain reconstructs the driver aggregate from a database row.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Available, dto.CreatedAt)
}
