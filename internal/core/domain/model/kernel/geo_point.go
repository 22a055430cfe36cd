package kernel

import "fleetboard/internal/pkg/errs"

// Latitude and longitude bounds in decimal degrees.
const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// GeoPoint is a value object holding a geographic coordinate pair in decimal
// degrees. It is used for the geocoded delivery location of an order.
//
// The zero value (0, 0) is a valid coordinate (Gulf of Guinea), so unlike
// other value objects GeoPoint carries no construction guard; validation only
// checks the coordinate bounds.
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a GeoPoint and validates the coordinate bounds.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{latitude: latitude, longitude: longitude}
	if err := point.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return point, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two points by exact coordinate value.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// Validate checks that both coordinates are within their allowed ranges.
func (p GeoPoint) Validate() error {
	if p.latitude < minLatitude || p.latitude > maxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", p.latitude, minLatitude, maxLatitude)
	}
	if p.longitude < minLongitude || p.longitude > maxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", p.longitude, minLongitude, maxLongitude)
	}
	return nil
}
