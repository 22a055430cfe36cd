package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with the assigned driver joined in.
// Newest orders come first so the dashboard shows fresh activity on top.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns the matching orders.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := orderSelectSQL
	args := make([]any, 0, 3)

	if status := query.Status(); status != nil {
		sql += " WHERE o.status = ?"
		args = append(args, status.String())
	}

	sql += " ORDER BY o.created_at DESC"

	if query.Limit() > 0 {
		sql += " LIMIT ? OFFSET ?"
		args = append(args, query.Limit(), query.Offset())
	} else if query.Offset() > 0 {
		sql += " OFFSET ?"
		args = append(args, query.Offset())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
