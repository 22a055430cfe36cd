package queries

import "errors"

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery returns the order count per lifecycle status.
// The response always carries all four statuses, zero-filled.
type CountOrdersByStatusQuery struct {
	isConstructed bool
}

// NewCountOrdersByStatusQuery creates a parameterless per-status count query.
func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	if !q.isConstructed {
		return ErrCountOrdersByStatusQueryIsNotConstructed
	}
	return nil
}
