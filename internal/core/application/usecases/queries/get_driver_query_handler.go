package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/pkg/errs"
)

// GetDriverQueryHandler fetches one driver projection by ID.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single-driver queries.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns the driver or an ObjectNotFoundError.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			available,
			created_at
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Raw()).Rows()
	if err != nil {
		return DriverResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DriverResponse{}, err
		}
		return DriverResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	var (
		id        uuid.UUID
		name      string
		available bool
		createdAt time.Time
	)

	if err = rows.Scan(&id, &name, &available, &createdAt); err != nil {
		return DriverResponse{}, err
	}

	driverID, err := kernel.UUIDFromRaw(id)
	if err != nil {
		return DriverResponse{}, err
	}

	return DriverResponse{
		ID:        driverID,
		Name:      name,
		Available: available,
		CreatedAt: createdAt,
	}, rows.Err()
}
