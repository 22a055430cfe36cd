package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetboard/internal/core/domain/model/kernel"
)

// GetDriversQueryHandler lists the whole fleet, newest registration first.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for fleet listing queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle returns every registered driver.
func (h GetDriversQueryHandler) Handle(ctx context.Context, query GetDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			available,
			created_at
		FROM drivers
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			available bool
			createdAt time.Time
		)

		if err = rows.Scan(&id, &name, &available, &createdAt); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromRaw(id)
		if idErr != nil {
			return nil, idErr
		}

		drivers = append(drivers, DriverResponse{
			ID:        driverID,
			Name:      name,
			Available: available,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
