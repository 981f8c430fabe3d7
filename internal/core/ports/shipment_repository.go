// Package ports defines the contracts between the core and its
// infrastructure collaborators: repositories, the unit of work, and the
// token provider. The interfaces enable dependency inversion and keep the
// application layer testable without a database or auth harness.
package ports

import (
	"context"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate, including its seeded tracking
	// history, as one insert. Returns an error wrapping errs.ErrConflict if
	// the tracking number collides with an existing shipment; callers use
	// that signal to retry with a freshly generated number.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment. The status field and
	// the tracking history are written together in a single update so that a
	// transition is never half applied.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByTrackingNumber retrieves a shipment by its public identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if absent.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error)

	// GetAllByOwner retrieves all shipments booked by the given user,
	// most recent booking first.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*shipment.Shipment, error)
}
