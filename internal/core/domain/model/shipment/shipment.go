package shipment

import (
	"errors"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through NewShipment or RestoreShipment. This ensures all shipments are validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrEmptyTrackingHistory is returned when restoring a shipment whose persisted
	// tracking history is empty; every shipment carries at least its booking event.
	ErrEmptyTrackingHistory = errors.New("tracking history must contain at least the booking event")

	// ErrStatusHistoryMismatch is returned when a shipment's status does not equal
	// the stage of its most recent tracking event.
	ErrStatusHistoryMismatch = errors.New("status must equal the stage of the last tracking event")
)

// Shipment is the aggregate root of the booking domain. It manages the
// shipment lifecycle from booking through status transitions and owns the
// append-only tracking history.
//
// Shipment maintains these invariants:
//   - The tracking number is immutable after creation
//   - The tracking history is never empty (the first entry is the booking event)
//   - History entries are appended in non-decreasing time order and never mutated
//   - The status always equals the stage of the most recent history entry
//   - Charges satisfy total = subtotal + tax
//
// Shipments are never deleted by this core; archival is an external concern.
type Shipment struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber
	ownerID        kernel.UUID

	sender   Party
	receiver Party
	parcel   Parcel
	tier     ServiceTier

	pickupDate time.Time
	bookedAt   time.Time

	status  Status
	charges Charges
	history []TrackingEvent

	isConstructed bool
}

// NewShipment books a new shipment. The status is set to Booked and the
// tracking history is seeded with a single booking event located at the
// sender's city, timestamped now in UTC (the booking timestamp, immutable
// thereafter).
//
// Parameters:
//   - id: internal identifier (valid UUID)
//   - trackingNumber: public identifier; uniqueness is enforced at persistence
//   - ownerID: the booking user's identifier
//   - sender, receiver: validated contact/address blocks
//   - parcel: validated weight and dimensions
//   - tier: Standard or Express
//   - pickupDate: requested pickup date (must not be zero)
//   - charges: monetary breakdown computed by the pricing engine
//
// Returns a validation error if any component is invalid.
func NewShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	ownerID kernel.UUID,
	sender Party,
	receiver Party,
	parcel Parcel,
	tier ServiceTier,
	pickupDate time.Time,
	charges Charges,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOwnerID(ownerID),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setParcel(parcel),
		s.setTier(tier),
		s.setPickupDate(pickupDate),
		s.setCharges(charges),
	); err != nil {
		return nil, err
	}

	bookingEvent, err := NewTrackingEvent(StatusBooked, sender.City(), BookingActivity)
	if err != nil {
		return nil, err
	}

	s.status = StatusBooked
	s.bookedAt = bookingEvent.OccurredAt()
	s.history = []TrackingEvent{bookingEvent}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. In addition to
// the field validations performed by NewShipment, it verifies the persisted
// state satisfies the aggregate invariants: non-empty history and status
// equal to the last event's stage.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	ownerID kernel.UUID,
	sender Party,
	receiver Party,
	parcel Parcel,
	tier ServiceTier,
	pickupDate time.Time,
	bookedAt time.Time,
	status Status,
	charges Charges,
	history []TrackingEvent,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setOwnerID(ownerID),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setParcel(parcel),
		s.setTier(tier),
		s.setPickupDate(pickupDate),
		s.setCharges(charges),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if bookedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("booking timestamp")
	}
	if len(history) == 0 {
		return nil, ErrEmptyTrackingHistory
	}
	for _, event := range history {
		if err := event.Validate(); err != nil {
			return nil, err
		}
	}
	if history[len(history)-1].Stage() != status {
		return nil, ErrStatusHistoryMismatch
	}

	s.status = status
	s.bookedAt = bookedAt
	s.history = append([]TrackingEvent(nil), history...)

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct
// and should be called when accepting shipments from outside the package.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their internal identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// TransitionTo moves the shipment to newStatus and appends the matching
// tracking event in one operation, keeping the status/history invariant.
//
// Any status in the enumerated set is accepted, including the current one;
// the transition graph is deliberately unconstrained (see Status). location
// may be empty and activity defaults to "Status updated to {newStatus}".
//
// The two changes - status field and history entry - must also be persisted
// together; repositories write them in a single update.
func (s *Shipment) TransitionTo(newStatus Status, location, activity string) error {
	event, err := NewTrackingEvent(newStatus, location, activity)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.history = append(s.history, event)
	return nil
}

// ID returns the internal identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the public identifier, immutable after creation.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber {
	return s.trackingNumber
}

// OwnerID returns the identifier of the user who booked the shipment.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// Sender returns the sender contact/address block.
func (s *Shipment) Sender() Party {
	return s.sender
}

// Receiver returns the receiver contact/address block.
func (s *Shipment) Receiver() Party {
	return s.receiver
}

// Parcel returns the package weight and dimensions.
func (s *Shipment) Parcel() Parcel {
	return s.parcel
}

// ServiceTier returns the selected service level.
func (s *Shipment) ServiceTier() ServiceTier {
	return s.tier
}

// PickupDate returns the requested pickup date.
func (s *Shipment) PickupDate() time.Time {
	return s.pickupDate
}

// BookedAt returns the booking timestamp, set at creation and immutable.
func (s *Shipment) BookedAt() time.Time {
	return s.bookedAt
}

// Status returns the current lifecycle status. It always equals the stage
// of the most recent tracking event.
func (s *Shipment) Status() Status {
	return s.status
}

// Charges returns the monetary breakdown computed at booking time.
func (s *Shipment) Charges() Charges {
	return s.charges
}

// TrackingHistory returns the tracking events in append order.
// The returned slice is a copy; the ledger itself cannot be modified
// through it.
func (s *Shipment) TrackingHistory() []TrackingEvent {
	return append([]TrackingEvent(nil), s.history...)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shipment) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setReceiver(receiver Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	s.receiver = receiver
	return nil
}

func (s *Shipment) setParcel(parcel Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	s.parcel = parcel
	return nil
}

func (s *Shipment) setTier(tier ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	s.tier = tier
	return nil
}

func (s *Shipment) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickup date")
	}
	s.pickupDate = pickupDate
	return nil
}

func (s *Shipment) setCharges(charges Charges) error {
	if err := charges.Validate(); err != nil {
		return err
	}
	s.charges = charges
	return nil
}
