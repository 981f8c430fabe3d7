package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler handles shipment status transitions.
// Loads the shipment by tracking number, applies the transition through the
// aggregate and writes the updated status and tracking history back in one
// transaction.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status update operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// The status field and the appended tracking event are persisted together,
// so readers never observe a status without its matching history entry.
// Returns the updated shipment, or an object-not-found error when no
// shipment carries the given tracking number.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.NewStatus(), cmd.Location(), cmd.Activity()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
