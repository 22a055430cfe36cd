// Package orderrepo implements order persistence over GORM, mapping between
// the Order aggregate and its relational representation.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order. Status is stored as text and
// indexed for the dashboard's per-status filtering and counting; created_at
// is indexed because every listing sorts on it.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName    string    `gorm:"size:255;not null"`
	CustomerPhone   string    `gorm:"size:50;not null"`
	DeliveryAddress string    `gorm:"size:500;not null"`
	OrderDetails    *string   `gorm:"size:1000"`
	Status          string    `gorm:"size:20;not null;index"`
	Latitude        *float64
	Longitude       *float64
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	AssignedAt      *time.Time
	InTransitAt     *time.Time
	DeliveredAt     *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database row.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Raw()
		driverID = &raw
	}

	var latitude, longitude *float64
	if point := aggregate.Location(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		latitude, longitude = &lat, &lon
	}

	return OrderDTO{
		ID:              aggregate.ID().Raw(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		OrderDetails:    aggregate.OrderDetails(),
		Status:          aggregate.Status().String(),
		Latitude:        latitude,
		Longitude:       longitude,
		DriverID:        driverID,
		CreatedAt:       aggregate.CreatedAt(),
		AssignedAt:      aggregate.AssignedAt(),
		InTransitAt:     aggregate.InTransitAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}

// toDomain reconstructs the order aggregate from a database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromRaw(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.DeliveryAddress,
		dto.OrderDetails,
		status,
		location,
		driverID,
		dto.CreatedAt,
		dto.AssignedAt,
		dto.InTransitAt,
		dto.DeliveredAt,
	)
}
