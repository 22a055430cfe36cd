package queries

import (
	"errors"

	"fleetboard/internal/core/domain/model/kernel"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery fetches a single driver by ID.
type GetDriverQuery struct {
	driverID kernel.UUID

	isConstructed bool
}

// NewGetDriverQuery creates a query for one driver.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}

	return GetDriverQuery{
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetDriverQueryIsNotConstructed
	}
	return nil
}

// DriverID returns the requested driver's identifier.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
