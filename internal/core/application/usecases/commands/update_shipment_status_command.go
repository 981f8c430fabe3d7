package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new status and record the transition in its tracking history. Location and
// activity are optional annotations for the tracking event.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	newStatus      shipment.Status
	location       string
	activity       string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to update a shipment's status.
// Validates the tracking number and the target status.
func NewUpdateShipmentStatusCommand(
	trackingNumber kernel.TrackingNumber,
	newStatus shipment.Status,
	location string,
	activity string,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		location: location,
		activity: activity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// TrackingNumber returns the identifier of the shipment to update.
func (c UpdateShipmentStatusCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// NewStatus returns the target status.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.Status {
	return c.newStatus
}

// Location returns the optional location annotation for the tracking event.
func (c UpdateShipmentStatusCommand) Location() string {
	return c.location
}

// Activity returns the optional activity annotation for the tracking event.
func (c UpdateShipmentStatusCommand) Activity() string {
	return c.activity
}

func (c *UpdateShipmentStatusCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewStatus(newStatus shipment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
