package queries

import (
	"errors"

	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/pkg/errs"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders for the dashboard, newest first, optionally
// filtered by status and paginated with limit/offset.
type GetOrdersQuery struct {
	status *order.Status
	limit  int
	offset int

	isConstructed bool
}

// NewGetOrdersQuery creates a listing query. A nil status means all statuses;
// a non-positive limit disables pagination.
func NewGetOrdersQuery(status *order.Status, limit, offset int) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if offset < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetOrdersQuery{
		status:        status,
		limit:         limit,
		offset:        offset,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrdersQueryIsNotConstructed
	}
	return nil
}

// Status returns the status filter, nil when absent.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Limit returns the page size; non-positive means unlimited.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetOrdersQuery) Offset() int {
	return q.offset
}
