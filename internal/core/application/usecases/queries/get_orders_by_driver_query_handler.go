package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByDriverQueryHandler lists the orders assigned to one driver.
// An unknown driver ID yields an empty slice rather than an error; the
// dashboard treats the two the same way.
type GetOrdersByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDriverQueryHandler creates a handler for per-driver listings.
func NewGetOrdersByDriverQueryHandler(db *gorm.DB) GetOrdersByDriverQueryHandler {
	return GetOrdersByDriverQueryHandler{db: db}
}

// Handle returns the driver's orders, newest first.
func (h GetOrdersByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDriverQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(orderSelectSQL+" WHERE o.driver_id = ? ORDER BY o.created_at DESC", query.DriverID().Raw()).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
