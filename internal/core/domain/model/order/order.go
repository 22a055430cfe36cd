package order

import (
	"errors"
	"time"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/pkg/errs"
)

// Field length limits for order attributes.
const (
	maxCustomerNameLen    = 255
	maxCustomerPhoneLen   = 50
	maxDeliveryAddressLen = 500
	maxOrderDetailsLen    = 1000
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder constructors.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer delivery request. It owns the
// lifecycle state machine and the milestone timestamps that record when the
// order moved through it.
//
// Invariants maintained by the aggregate:
//   - Customer name, phone, and delivery address are non-empty and within
//     their length limits; order details, when present, are within limit.
//   - A fresh order starts as PENDING with no driver and no milestones.
//   - Writing ASSIGNED, IN_TRANSIT, or DELIVERED via ChangeStatus stamps the
//     matching milestone timestamp; milestones are never cleared.
//   - AssignDriver refuses delivered orders; an initial assignment forces
//     ASSIGNED and stamps assignedAt, a reassignment swaps the driver only.
//
// Direct status writes do not re-validate the full status/timestamp/driver
// consistency; that permissiveness is the caller's responsibility.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName, customerPhone and deliveryAddress identify the customer
	// and the destination
	customerName    string
	customerPhone   string
	deliveryAddress string

	// orderDetails is an optional free-text note (nil when absent)
	orderDetails *string

	// status is the current state in the delivery lifecycle
	status Status

	// location is the geocoded delivery coordinate (nil if never geocoded)
	location *kernel.GeoPoint

	// driverID references the assigned driver (nil if unassigned)
	driverID *kernel.UUID

	// createdAt is the order creation time
	createdAt time.Time

	// milestone timestamps, stamped when the matching status is written
	assignedAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a fresh order in PENDING status.
//
// The status is always forced to PENDING regardless of what the caller might
// wish; milestone timestamps start nil and no driver is referenced. The
// delivery coordinate comes from the geocoding collaborator, which never
// fails (unknown addresses resolve to a default center), so it is required
// here.
func NewOrder(
	id kernel.UUID,
	customerName, customerPhone, deliveryAddress string,
	orderDetails *string,
	location kernel.GeoPoint,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDetails(orderDetails),
		o.setLocation(&location),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its status, driver reference, and milestone timestamps. Unlike NewOrder it
// accepts any valid status and does not force PENDING.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerPhone, deliveryAddress string,
	orderDetails *string,
	status Status,
	location *kernel.GeoPoint,
	driverID *kernel.UUID,
	createdAt time.Time,
	assignedAt, inTransitAt, deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		driverID:      driverID,
		assignedAt:    assignedAt,
		inTransitAt:   inTransitAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setOrderDetails(orderDetails),
		o.setStatus(status),
		o.setLocation(location),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's contact phone.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryAddress returns the destination address as entered.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// OrderDetails returns the optional free-text details, nil when absent.
func (o *Order) OrderDetails() *string {
	return o.orderDetails
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Location returns the geocoded delivery coordinate, nil if never geocoded.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// Driver returns the assigned driver's ID, nil when unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignedAt returns when the order was first assigned, nil if never.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// InTransitAt returns when the order went in transit, nil if never.
func (o *Order) InTransitAt() *time.Time {
	return o.inTransitAt
}

// DeliveredAt returns when the order was delivered, nil if never.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ChangeStatus writes a new status and reactively stamps the matching
// milestone timestamp with now.
//
// Exactly one milestone is touched per call: ASSIGNED stamps assignedAt,
// IN_TRANSIT stamps inTransitAt, DELIVERED stamps deliveredAt, and PENDING
// touches nothing. The stamp happens on every call, even when the milestone
// was already set, so re-transitioning an order refreshes the timestamp
// rather than preserving the first-set time. Milestones are never cleared.
func (o *Order) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	switch status {
	case Assigned:
		o.assignedAt = &now
	case InTransit:
		o.inTransitAt = &now
	case Delivered:
		o.deliveredAt = &now
	case Pending:
		// no milestone for PENDING
	}

	return nil
}

// AssignDriver binds the order to a driver.
//
// Delivered orders are terminal and refuse assignment with a state conflict.
// An initial assignment (no current driver) forces the status to ASSIGNED and
// stamps assignedAt with now. A reassignment (a driver is already referenced,
// possibly the same one) swaps the driver reference only: status and all
// milestone timestamps stay untouched, because the order was already accepted
// into the pipeline and only a driver handoff occurred.
func (o *Order) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	if o.driverID == nil {
		o.driverID = &driverID
		o.status = Assigned
		o.assignedAt = &now
		return nil
	}

	o.driverID = &driverID
	return nil
}

// UpdateCustomerName replaces the customer name, applying creation-time validation.
func (o *Order) UpdateCustomerName(name string) error {
	return o.setCustomerName(name)
}

// UpdateCustomerPhone replaces the customer phone, applying creation-time validation.
func (o *Order) UpdateCustomerPhone(phone string) error {
	return o.setCustomerPhone(phone)
}

// UpdateDeliveryAddress replaces the delivery address, applying creation-time
// validation. The stored coordinate is not re-geocoded here; callers that
// care about coordinate freshness re-run the geocoder themselves.
func (o *Order) UpdateDeliveryAddress(address string) error {
	return o.setDeliveryAddress(address)
}

// UpdateOrderDetails replaces the optional details text.
func (o *Order) UpdateOrderDetails(details *string) error {
	return o.setOrderDetails(details)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if err := ValidateCustomerName(name); err != nil {
		return err
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if err := ValidateCustomerPhone(phone); err != nil {
		return err
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if err := ValidateDeliveryAddress(address); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setOrderDetails(details *string) error {
	if err := ValidateOrderDetails(details); err != nil {
		return err
	}
	o.orderDetails = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	o.location = location
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
