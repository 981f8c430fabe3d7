package commands

import (
	"context"
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/domain/services"
	"shipments/internal/pkg/errs"
)

// trackingNumberAttempts bounds how many candidate tracking numbers the
// booking handler draws before giving up. Collisions are detected by the
// store's unique constraint and surfaced as errs.ErrConflict.
const trackingNumberAttempts = 5

// BookShipmentCommandHandler handles the business logic for booking shipments.
// Quotes the charges through the pricing engine, generates a tracking number
// and persists the new shipment in "Booked" status.
//
// Example:
//
//	handler := NewBookShipmentCommandHandler(uowFactory, pricing)
//	cmd, _ := NewBookShipmentCommand(ownerID, sender, receiver, parcel, shipment.TierExpress, pickupDate)
//
//	booked, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// booked.TrackingNumber() is unique and ready to hand to the customer
type BookShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	pricing    services.PricingEngine
}

// NewBookShipmentCommandHandler creates a handler for shipment booking operations.
// Requires a ShipmentUoWFactory for transactional persistence and the
// pricing engine that quotes charges.
func NewBookShipmentCommandHandler(
	uowFactory ShipmentUoWFactory, pricing services.PricingEngine,
) BookShipmentCommandHandler {
	return BookShipmentCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the shipment booking command.
// Calculates charges for the parcel weight and service tier, then inserts
// the shipment under a freshly generated tracking number. On a tracking
// number collision a new number is drawn and the insert retried, up to
// trackingNumberAttempts times; each attempt runs in its own transaction
// because a failed insert aborts the current one.
// Returns the booked shipment, or a retries-exhausted error when every
// candidate number collided.
func (h *BookShipmentCommandHandler) Handle(
	ctx context.Context, cmd BookShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	charges, err := h.pricing.Calculate(cmd.Parcel().WeightKg(), cmd.ServiceTier())
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < trackingNumberAttempts; attempt++ {
		booked, err := h.tryBook(ctx, cmd, charges)
		if err == nil {
			return booked, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, errs.NewRetriesExhaustedErrorWithCause(
		"tracking number generation", trackingNumberAttempts, lastErr,
	)
}

func (h *BookShipmentCommandHandler) tryBook(
	ctx context.Context, cmd BookShipmentCommand, charges shipment.Charges,
) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	booked, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewRandomTrackingNumber(),
		cmd.OwnerID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.Parcel(),
		cmd.ServiceTier(),
		cmd.PickupDate(),
		charges,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, booked); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return booked, nil
}
