// Package queries contains read-only operations in the CQRS split. Handlers
// bypass the domain model and read projection rows straight from the
// database, joining in the assigned driver where the dashboard needs it.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
)

// DriverSummaryResponse is the assigned-driver projection embedded in an
// order response.
type DriverSummaryResponse struct {
	ID        kernel.UUID
	Name      string
	Available bool
	CreatedAt time.Time
}

// OrderResponse is the order projection returned by the order queries,
// including the joined driver (nil when unassigned).
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	OrderDetails    *string
	Status          order.Status
	Latitude        *float64
	Longitude       *float64
	Driver          *DriverSummaryResponse
	CreatedAt       time.Time
	AssignedAt      *time.Time
	InTransitAt     *time.Time
	DeliveredAt     *time.Time
}

// DriverResponse is the driver projection returned by the driver queries.
type DriverResponse struct {
	ID        kernel.UUID
	Name      string
	Available bool
	CreatedAt time.Time
}

// orderSelectSQL is the shared projection for the order queries. Column order
// must match scanOrderRow.
const orderSelectSQL = `
	SELECT
		o.id,
		o.customer_name,
		o.customer_phone,
		o.delivery_address,
		o.order_details,
		o.status,
		o.latitude,
		o.longitude,
		o.created_at,
		o.assigned_at,
		o.in_transit_at,
		o.delivered_at,
		d.id,
		d.name,
		d.available,
		d.created_at
	FROM orders o
	LEFT JOIN drivers d ON d.id = o.driver_id
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id                                           uuid.UUID
		customerName, customerPhone, deliveryAddress string
		orderDetails                                 sql.NullString
		status                                       string
		latitude, longitude                          sql.NullFloat64
		createdAt                                    time.Time
		assignedAt, inTransitAt, deliveredAt         sql.NullTime
		driverID                                     uuid.NullUUID
		driverName                                   sql.NullString
		driverAvailable                              sql.NullBool
		driverCreatedAt                              sql.NullTime
	)

	err := rows.Scan(
		&id,
		&customerName,
		&customerPhone,
		&deliveryAddress,
		&orderDetails,
		&status,
		&latitude,
		&longitude,
		&createdAt,
		&assignedAt,
		&inTransitAt,
		&deliveredAt,
		&driverID,
		&driverName,
		&driverAvailable,
		&driverCreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromRaw(id)
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:              orderID,
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		DeliveryAddress: deliveryAddress,
		Status:          order.Status(status),
		CreatedAt:       createdAt,
	}

	if orderDetails.Valid {
		resp.OrderDetails = &orderDetails.String
	}
	if latitude.Valid {
		resp.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		resp.Longitude = &longitude.Float64
	}
	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.Time
	}
	if inTransitAt.Valid {
		resp.InTransitAt = &inTransitAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}

	if driverID.Valid {
		summaryID, idErr := kernel.UUIDFromRaw(driverID.UUID)
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.Driver = &DriverSummaryResponse{
			ID:        summaryID,
			Name:      driverName.String,
			Available: driverAvailable.Bool,
			CreatedAt: driverCreatedAt.Time,
		}
	}

	return resp, nil
}
