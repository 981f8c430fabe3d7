package queries

import (
	"context"

	"shipments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads one shipment's detail from the database.
// Enforces that only the booking owner or an admin sees it; the two failure
// modes stay distinct so the transport layer can answer 404 versus 403.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment detail queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the shipment detail lookup.
// Returns an object-not-found error when the tracking number is unknown and
// an access-denied error when the requester is neither the owner nor admin.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}

	resp, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentResponse{}, err
	}

	requester := query.Requester()
	if !requester.IsAdmin && !requester.UserID.IsEqual(resp.OwnerID) {
		return ShipmentResponse{}, errs.NewAccessDeniedError("requester", query.TrackingNumber().String())
	}

	return resp, nil
}
