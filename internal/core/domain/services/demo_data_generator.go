package services

import (
	"fmt"
	"math/rand"
	"time"

	"fleetboard/internal/core/domain/model/driver"
	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/core/ports"
	"fleetboard/internal/pkg/errs"
)

// Driver generation bounds: 5 to 8 drivers, the first 3 forced available,
// the remainder available with probability 0.6.
const (
	minDrivers             = 5
	maxDrivers             = 8
	forcedAvailableDrivers = 3
	availabilityChance     = 0.6
)

// Order generation bounds: 15 to 25 orders created within the last 8 hours.
const (
	minOrders          = 15
	maxOrders          = 25
	creationWindow     = 8 * time.Hour
	detailsChance      = 0.8
	driverHistoryBirth = 7 * 24 * time.Hour
)

// Weighted status distribution (cumulative):
// 30% PENDING, 20% ASSIGNED, 15% IN_TRANSIT, 35% DELIVERED.
const (
	pendingWeight   = 0.30
	assignedWeight  = 0.20
	inTransitWeight = 0.15
)

// Milestone offset windows per generated status.
const (
	assignedMaxOffset = 30 * time.Minute

	inTransitAssignMaxOffset = 20 * time.Minute
	inTransitMaxOffset       = 15 * time.Minute

	deliveredAssignMaxOffset    = 15 * time.Minute
	deliveredInTransitMaxOffset = 10 * time.Minute
	deliveredMaxOffset          = 30 * time.Minute

	// anyDriverChance models that a driver may have gone unavailable after
	// completing a delivery: delivered orders draw from all drivers with
	// this probability, otherwise from the available ones only.
	anyDriverChance = 0.7
)

var driverNamePool = []string{
	"Alice Johnson",
	"Marcus Webb",
	"Priya Sharma",
	"Diego Ramirez",
	"Yuki Tanaka",
	"Omar Hassan",
	"Elena Petrova",
	"Sam Okafor",
}

var customerNamePool = []string{
	"John Doe",
	"Jane Smith",
	"Robert Chen",
	"Maria Garcia",
	"David Kim",
	"Sarah Miller",
	"Ahmed Ali",
	"Lisa Wong",
	"Tom Baker",
	"Nina Rossi",
}

var orderDetailsPool = []string{
	"Leave at the front door",
	"Ring the bell twice",
	"Call on arrival",
	"Extra napkins please",
	"No contact delivery",
	"Buzzer is broken, call instead",
	"Beware of the dog",
	"Hand to the doorman",
}

// DemoDataSet is the generated snapshot: drivers first, then orders whose
// driver references point into the driver slice.
type DemoDataSet struct {
	Drivers []*driver.Driver
	Orders  []*order.Order
}

// DemoDataGenerator builds randomized demo snapshots. The distribution is
// deterministic in shape only; inject a seeded rand.Rand for reproducible
// values in tests. The generator draws delivery addresses from the injected
// pool and geocodes them through the same geocoder the creation path uses,
// so seeded coordinates agree with live ones.
type DemoDataGenerator struct {
	rng       *rand.Rand
	geocoder  ports.Geocoder
	addresses []string
}

// NewDemoDataGenerator creates a generator over the given randomness source,
// geocoder, and delivery-address pool.
func NewDemoDataGenerator(rng *rand.Rand, geocoder ports.Geocoder, addresses []string) (*DemoDataGenerator, error) {
	if rng == nil {
		return nil, errs.NewValueIsRequiredError("rng")
	}
	if geocoder == nil {
		return nil, errs.NewValueIsRequiredError("geocoder")
	}
	if len(addresses) == 0 {
		return nil, errs.NewValueIsRequiredError("addresses")
	}

	return &DemoDataGenerator{
		rng:       rng,
		geocoder:  geocoder,
		addresses: addresses,
	}, nil
}

// Generate produces a fresh snapshot anchored at now. Every order's driver
// link and milestone timestamps agree with its generated status, so the
// snapshot satisfies the same invariants live traffic would produce.
func (g *DemoDataGenerator) Generate(now time.Time) (*DemoDataSet, error) {
	drivers, err := g.generateDrivers(now)
	if err != nil {
		return nil, err
	}

	orders, err := g.generateOrders(now, drivers)
	if err != nil {
		return nil, err
	}

	return &DemoDataSet{Drivers: drivers, Orders: orders}, nil
}

func (g *DemoDataGenerator) generateDrivers(now time.Time) ([]*driver.Driver, error) {
	count := minDrivers + g.rng.Intn(maxDrivers-minDrivers+1)

	names := make([]string, len(driverNamePool))
	copy(names, driverNamePool)
	g.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	drivers := make([]*driver.Driver, 0, count)
	for i := 0; i < count; i++ {
		available := i < forcedAvailableDrivers || g.rng.Float64() < availabilityChance
		createdAt := now.Add(-g.randomDuration(driverHistoryBirth))

		d, err := driver.NewDriver(kernel.NewUUID(), names[i], available, createdAt)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

func (g *DemoDataGenerator) generateOrders(now time.Time, drivers []*driver.Driver) ([]*order.Order, error) {
	count := minOrders + g.rng.Intn(maxOrders-minOrders+1)

	available := make([]*driver.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.IsAvailable() {
			available = append(available, d)
		}
	}

	orders := make([]*order.Order, 0, count)
	for i := 0; i < count; i++ {
		o, err := g.generateOrder(now, drivers, available)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (g *DemoDataGenerator) generateOrder(
	now time.Time,
	drivers, available []*driver.Driver,
) (*order.Order, error) {
	address := g.addresses[g.rng.Intn(len(g.addresses))]
	location := g.geocoder.Geocode(address)
	createdAt := now.Add(-g.randomDuration(creationWindow))

	var details *string
	if g.rng.Float64() < detailsChance {
		text := orderDetailsPool[g.rng.Intn(len(orderDetailsPool))]
		details = &text
	}

	status := g.pickStatus()

	var (
		driverID    *kernel.UUID
		assignedAt  *time.Time
		inTransitAt *time.Time
		deliveredAt *time.Time
	)

	switch status {
	case order.Pending:
		// no driver, no milestones

	case order.Assigned:
		driverID = g.pickDriverID(available)
		assignedAt = g.offset(createdAt, assignedMaxOffset)

	case order.InTransit:
		driverID = g.pickDriverID(available)
		assignedAt = g.offset(createdAt, inTransitAssignMaxOffset)
		inTransitAt = g.offset(*assignedAt, inTransitMaxOffset)

	case order.Delivered:
		pool := available
		if g.rng.Float64() < anyDriverChance {
			pool = drivers
		}
		driverID = g.pickDriverID(pool)
		assignedAt = g.offset(createdAt, deliveredAssignMaxOffset)
		inTransitAt = g.offset(*assignedAt, deliveredInTransitMaxOffset)
		deliveredAt = g.offset(*inTransitAt, deliveredMaxOffset)
	}

	return order.RestoreOrder(
		kernel.NewUUID(),
		customerNamePool[g.rng.Intn(len(customerNamePool))],
		g.randomPhone(),
		address,
		details,
		status,
		&location,
		driverID,
		createdAt,
		assignedAt, inTransitAt, deliveredAt,
	)
}

func (g *DemoDataGenerator) pickStatus() order.Status {
	roll := g.rng.Float64()
	switch {
	case roll < pendingWeight:
		return order.Pending
	case roll < pendingWeight+assignedWeight:
		return order.Assigned
	case roll < pendingWeight+assignedWeight+inTransitWeight:
		return order.InTransit
	default:
		return order.Delivered
	}
}

func (g *DemoDataGenerator) pickDriverID(pool []*driver.Driver) *kernel.UUID {
	id := pool[g.rng.Intn(len(pool))].ID()
	return &id
}

func (g *DemoDataGenerator) offset(base time.Time, window time.Duration) *time.Time {
	t := base.Add(g.randomDuration(window))
	return &t
}

func (g *DemoDataGenerator) randomDuration(window time.Duration) time.Duration {
	return time.Duration(g.rng.Int63n(int64(window)))
}

func (g *DemoDataGenerator) randomPhone() string {
	return fmt.Sprintf("+1%03d%03d%04d", 200+g.rng.Intn(800), g.rng.Intn(1000), g.rng.Intn(10000))
}
