package queries

import (
	"context"

	"shipments/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetDuePickupsQueryHandler reads booked shipments due for pickup.
type GetDuePickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetDuePickupsQueryHandler creates a handler for due pickup queries.
// Requires a GORM database connection for query execution.
func NewGetDuePickupsQueryHandler(db *gorm.DB) GetDuePickupsQueryHandler {
	return GetDuePickupsQueryHandler{db: db}
}

// Handle executes the due pickup lookup.
// Returns shipments still in "Booked" status whose pickup date is on or
// before the reference date, oldest pickup first.
func (h GetDuePickupsQueryHandler) Handle(
	ctx context.Context, query GetDuePickupsQuery,
) ([]DuePickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT tracking_number, sender_name, sender_city, pickup_date
		FROM shipments
		WHERE status = ? AND pickup_date <= ?
		ORDER BY pickup_date
	`, shipment.StatusBooked.String(), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pickups := make([]DuePickupResponse, 0)
	for rows.Next() {
		var pickup DuePickupResponse
		if err = rows.Scan(
			&pickup.TrackingNumber, &pickup.SenderName, &pickup.SenderCity, &pickup.PickupDate,
		); err != nil {
			return nil, err
		}
		pickups = append(pickups, pickup)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
