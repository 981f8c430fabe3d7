package shipment

import (
	"fmt"
	"time"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// BookingActivity is the activity text of the first tracking event,
// synthesized when a shipment is booked.
const BookingActivity = "Shipment booked and confirmed"

// ErrTrackingEventIsNotConstructed is returned when validating a zero-value TrackingEvent.
var ErrTrackingEventIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking event must be created via NewTrackingEvent or RestoreTrackingEvent")

// TrackingEvent is one immutable record in a shipment's tracking history.
// Events are owned exclusively by their shipment, appended only through the
// aggregate, and never mutated or shared once recorded.
type TrackingEvent struct { //nolint:recvcheck //using for validation
	stage      Status
	occurredAt time.Time
	location   string
	activity   string

	guard guard.ConstructorGuard
}

// NewTrackingEvent creates a tracking event for the given stage, timestamped
// now in UTC. The caller never supplies the timestamp.
//
// location may be empty. If activity is empty, it defaults to
// "Status updated to {stage}".
func NewTrackingEvent(stage Status, location, activity string) (TrackingEvent, error) {
	if err := stage.Validate(); err != nil {
		return TrackingEvent{}, err
	}

	if activity == "" {
		activity = fmt.Sprintf("Status updated to %s", stage)
	}

	return TrackingEvent{
		stage:      stage,
		occurredAt: time.Now().UTC(),
		location:   location,
		activity:   activity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrackingEvent reconstructs a tracking event from persistence,
// keeping its original timestamp.
func RestoreTrackingEvent(stage Status, occurredAt time.Time, location, activity string) (TrackingEvent, error) {
	if err := stage.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if occurredAt.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("tracking event timestamp")
	}
	if activity == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("tracking event activity")
	}

	return TrackingEvent{
		stage:      stage,
		occurredAt: occurredAt,
		location:   location,
		activity:   activity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Stage returns the status recorded by this event.
func (e TrackingEvent) Stage() Status {
	return e.stage
}

// OccurredAt returns the UTC timestamp assigned when the event was appended.
func (e TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Location returns where the event happened. May be empty.
func (e TrackingEvent) Location() string {
	return e.location
}

// Activity returns the human-readable event description.
func (e TrackingEvent) Activity() string {
	return e.activity
}

// Validate checks that the event was properly constructed.
func (e TrackingEvent) Validate() error {
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}
