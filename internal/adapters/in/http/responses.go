package http

import (
	"time"

	"fleetboard/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body. Message text is machine-readable
// enough for clients to disambiguate (e.g. "Order not found" vs "Driver not
// found") without parsing internals.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DriverJSON is the driver representation, standalone and nested in orders.
type DriverJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderJSON is the order representation. Driver is null when unassigned;
// milestone timestamps are null until stamped.
type OrderJSON struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	OrderDetails    *string     `json:"orderDetails"`
	Status          string      `json:"status"`
	Latitude        *float64    `json:"latitude"`
	Longitude       *float64    `json:"longitude"`
	Driver          *DriverJSON `json:"driver"`
	CreatedAt       time.Time   `json:"createdAt"`
	AssignedAt      *time.Time  `json:"assignedAt"`
	InTransitAt     *time.Time  `json:"inTransitAt"`
	DeliveredAt     *time.Time  `json:"deliveredAt"`
}

// ResetResponse reports the row counts a data reset created.
type ResetResponse struct {
	DriversCreated int `json:"driversCreated"`
	OrdersCreated  int `json:"ordersCreated"`
}

// HealthResponse is the store connectivity probe body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func orderJSON(resp queries.OrderResponse) OrderJSON {
	out := OrderJSON{
		ID:              resp.ID.String(),
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		DeliveryAddress: resp.DeliveryAddress,
		OrderDetails:    resp.OrderDetails,
		Status:          resp.Status.String(),
		Latitude:        resp.Latitude,
		Longitude:       resp.Longitude,
		CreatedAt:       resp.CreatedAt,
		AssignedAt:      resp.AssignedAt,
		InTransitAt:     resp.InTransitAt,
		DeliveredAt:     resp.DeliveredAt,
	}

	if resp.Driver != nil {
		out.Driver = &DriverJSON{
			ID:        resp.Driver.ID.String(),
			Name:      resp.Driver.Name,
			Available: resp.Driver.Available,
			CreatedAt: resp.Driver.CreatedAt,
		}
	}

	return out
}

func driverJSON(resp queries.DriverResponse) DriverJSON {
	return DriverJSON{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Available: resp.Available,
		CreatedAt: resp.CreatedAt,
	}
}
