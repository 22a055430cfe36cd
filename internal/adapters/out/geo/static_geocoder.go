// Package geo provides the static address-table geocoder. Lookups are pure
// and never fail: unknown addresses resolve to a default center coordinate so
// order creation is never blocked on geocoding.
package geo

import (
	"sort"
	"strings"

	"fleetboard/internal/core/domain/model/kernel"
)

// Default center returned for addresses missing from the table (lower Manhattan).
const (
	defaultCenterLatitude  = 40.7128
	defaultCenterLongitude = -74.0060
)

// addressTable holds the pre-geocoded delivery addresses the dashboard knows
// about. Coordinates were looked up once and frozen; the demo data generator
// draws from the same table so seeded orders carry matching coordinates.
var addressTable = map[string]kernel.GeoPoint{
	"123 Main St, Brooklyn, NY 11201":        mustPoint(40.6952, -73.9895),
	"456 Court St, Brooklyn, NY 11231":       mustPoint(40.6814, -73.9962),
	"789 Atlantic Ave, Brooklyn, NY 11217":   mustPoint(40.6840, -73.9772),
	"321 Smith St, Brooklyn, NY 11231":       mustPoint(40.6795, -73.9937),
	"654 Bedford Ave, Brooklyn, NY 11249":    mustPoint(40.7170, -73.9574),
	"987 Flatbush Ave, Brooklyn, NY 11226":   mustPoint(40.6527, -73.9593),
	"147 Montague St, Brooklyn, NY 11201":    mustPoint(40.6944, -73.9935),
	"258 5th Ave, Brooklyn, NY 11215":        mustPoint(40.6738, -73.9829),
	"369 Myrtle Ave, Brooklyn, NY 11205":     mustPoint(40.6932, -73.9670),
	"741 Fulton St, Brooklyn, NY 11217":      mustPoint(40.6869, -73.9750),
	"852 Grand St, Brooklyn, NY 11211":       mustPoint(40.7121, -73.9437),
	"963 Manhattan Ave, Brooklyn, NY 11222":  mustPoint(40.7306, -73.9543),
	"159 7th Ave, Brooklyn, NY 11215":        mustPoint(40.6707, -73.9796),
	"357 Vanderbilt Ave, Brooklyn, NY 11238": mustPoint(40.6835, -73.9685),
	"468 Driggs Ave, Brooklyn, NY 11211":     mustPoint(40.7167, -73.9533),
}

func mustPoint(latitude, longitude float64) kernel.GeoPoint {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return point
}

// StaticGeocoder implements ports.Geocoder over the frozen address table.
type StaticGeocoder struct {
	defaultCenter kernel.GeoPoint
}

// NewStaticGeocoder creates a geocoder backed by the built-in address table.
func NewStaticGeocoder() *StaticGeocoder {
	return &StaticGeocoder{defaultCenter: mustPoint(defaultCenterLatitude, defaultCenterLongitude)}
}

// Geocode resolves an address to its coordinate. Lookup is case-insensitive
// on the full address string; a miss returns the default center rather than
// an error.
func (g *StaticGeocoder) Geocode(address string) kernel.GeoPoint {
	needle := strings.ToLower(strings.TrimSpace(address))
	for known, point := range addressTable {
		if strings.ToLower(known) == needle {
			return point
		}
	}
	return g.defaultCenter
}

// DefaultCenter returns the fallback coordinate used for unknown addresses.
func (g *StaticGeocoder) DefaultCenter() kernel.GeoPoint {
	return g.defaultCenter
}

// KnownAddresses returns every address in the table, sorted for determinism.
// The demo data generator uses this as its delivery-address pool.
func (g *StaticGeocoder) KnownAddresses() []string {
	addresses := make([]string, 0, len(addressTable))
	for address := range addressTable {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}
