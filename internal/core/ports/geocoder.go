package ports

import (
	"fleetboard/internal/core/domain/model/kernel"
)

// Geocoder resolves a delivery address to a coordinate. Implementations never
// fail: an unknown address resolves to a default center coordinate so order
// creation is never blocked on geocoding.
type Geocoder interface {
	Geocode(address string) kernel.GeoPoint
}
