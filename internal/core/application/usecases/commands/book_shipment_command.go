package commands

import (
	"errors"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var (
	ErrBookShipmentCommandIsNotConstructed = errors.New(
		"BookShipmentCommand must be created via NewBookShipmentCommand constructor",
	)
)

// BookShipmentCommand represents a request to book a new shipment.
// Encapsulates the authenticated owner, both address blocks, the parcel,
// the service tier and the requested pickup date. Pricing and identifier
// generation happen in the handler.
//
// Example:
//
//	cmd, err := NewBookShipmentCommand(ownerID, sender, receiver, parcel, shipment.TierExpress, pickupDate)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookShipmentCommandHandler(uowFactory, pricing)
//	booked, err := handler.Handle(ctx, cmd)
type BookShipmentCommand struct { //nolint:recvcheck //using for validation
	ownerID    kernel.UUID
	sender     shipment.Party
	receiver   shipment.Party
	parcel     shipment.Parcel
	tier       shipment.ServiceTier
	pickupDate time.Time

	guard guard.ConstructorGuard
}

// NewBookShipmentCommand creates a command to book a shipment.
// Validates the owner ID, both parties, the parcel, the tier and the
// pickup date. Returns an error if any validation fails.
func NewBookShipmentCommand(
	ownerID kernel.UUID,
	sender shipment.Party,
	receiver shipment.Party,
	parcel shipment.Parcel,
	tier shipment.ServiceTier,
	pickupDate time.Time,
) (BookShipmentCommand, error) {
	cmd := BookShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
		cmd.setParcel(parcel),
		cmd.setTier(tier),
		cmd.setPickupDate(pickupDate),
	); err != nil {
		return BookShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookShipmentCommandIsNotConstructed if validation fails.
func (c BookShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookShipmentCommandIsNotConstructed)
}

// OwnerID returns the authenticated booking user's identifier.
func (c BookShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Sender returns the sender contact/address block.
func (c BookShipmentCommand) Sender() shipment.Party {
	return c.sender
}

// Receiver returns the receiver contact/address block.
func (c BookShipmentCommand) Receiver() shipment.Party {
	return c.receiver
}

// Parcel returns the package weight and dimensions.
func (c BookShipmentCommand) Parcel() shipment.Parcel {
	return c.parcel
}

// ServiceTier returns the requested service level.
func (c BookShipmentCommand) ServiceTier() shipment.ServiceTier {
	return c.tier
}

// PickupDate returns the requested pickup date.
func (c BookShipmentCommand) PickupDate() time.Time {
	return c.pickupDate
}

func (c *BookShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *BookShipmentCommand) setSender(sender shipment.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	c.sender = sender
	return nil
}

func (c *BookShipmentCommand) setReceiver(receiver shipment.Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	c.receiver = receiver
	return nil
}

func (c *BookShipmentCommand) setParcel(parcel shipment.Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	c.parcel = parcel
	return nil
}

func (c *BookShipmentCommand) setTier(tier shipment.ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	c.tier = tier
	return nil
}

func (c *BookShipmentCommand) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickup date")
	}
	c.pickupDate = pickupDate
	return nil
}
