package queries

import "errors"

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery lists all drivers, newest first.
type GetDriversQuery struct {
	isConstructed bool
}

// NewGetDriversQuery creates a parameterless driver listing query.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetDriversQueryIsNotConstructed
	}
	return nil
}
