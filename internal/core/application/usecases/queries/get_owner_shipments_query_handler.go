package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnerShipmentsQueryHandler lists a user's shipments from the database.
type GetOwnerShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerShipmentsQueryHandler creates a handler for owner shipment listings.
// Requires a GORM database connection for query execution.
func NewGetOwnerShipmentsQueryHandler(db *gorm.DB) GetOwnerShipmentsQueryHandler {
	return GetOwnerShipmentsQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns the owner's shipments ordered by booking time, newest first.
func (h GetOwnerShipmentsQueryHandler) Handle(
	ctx context.Context, query GetOwnerShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE owner_id = ?
		ORDER BY booked_at DESC
	`, query.OwnerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		resp, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
