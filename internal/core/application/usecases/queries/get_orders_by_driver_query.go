package queries

import (
	"errors"

	"fleetboard/internal/core/domain/model/kernel"
)

var ErrGetOrdersByDriverQueryIsNotConstructed = errors.New(
	"GetOrdersByDriverQuery must be created via NewGetOrdersByDriverQuery constructor",
)

// GetOrdersByDriverQuery lists the orders currently referencing a driver,
// newest first. Used by the dashboard's per-driver workload view.
type GetOrdersByDriverQuery struct {
	driverID kernel.UUID

	isConstructed bool
}

// NewGetOrdersByDriverQuery creates a per-driver listing query.
func NewGetOrdersByDriverQuery(driverID kernel.UUID) (GetOrdersByDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetOrdersByDriverQuery{}, err
	}

	return GetOrdersByDriverQuery{
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDriverQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrdersByDriverQueryIsNotConstructed
	}
	return nil
}

// DriverID returns the driver whose orders are requested.
func (q GetOrdersByDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
