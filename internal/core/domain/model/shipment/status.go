package shipment

import (
	"fmt"

	"shipments/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The status set is closed, but the transition graph is deliberately
// unconstrained: any valid status may follow any other. Status changes are
// an administrative action and the calling layer is trusted to choose a
// sensible transition; this mirrors the booking workflow where (for example)
// a shipment mistakenly marked Delivered can be corrected back to In Transit.
// Delivered and Cancelled are terminal by convention only.
//
// Status is a value object that validates membership in the enumerated set
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusBooked is the initial status assigned at booking time.
	StatusBooked

	// StatusInTransit indicates the shipment is moving between facilities.
	StatusInTransit

	// StatusOutForDelivery indicates the shipment is on its final leg.
	StatusOutForDelivery

	// StatusDelivered indicates the shipment reached the receiver.
	StatusDelivered

	// StatusCancelled indicates the booking was cancelled.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusBooked:         "Booked",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusBooked:         "Booked",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// StatusFromString parses a status from its display string ("Booked",
// "In Transit", "Out for Delivery", "Delivered", "Cancelled").
// Returns a ValueIsInvalidError for anything outside the enumerated set;
// parsing is case-sensitive because the stored representation is canonical.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the Status value belongs to the enumerated set.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones (which render as "Unknown").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
