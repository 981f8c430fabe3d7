package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// TrackingNumberPrefix is the fixed prefix of every public shipment identifier.
const TrackingNumberPrefix = "RS"

// trackingNumberDigits is the number of random decimal digits after the prefix.
const trackingNumberDigits = 6

var trackingNumberPattern = regexp.MustCompile(`^RS\d{6}$`)

// ErrTrackingNumberIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingNumber. Tracking numbers must be created via NewRandomTrackingNumber
// or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewRandomTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the public shipment identifier: the literal prefix "RS"
// followed by exactly six decimal digits (leading zeros allowed). It is an
// immutable value object, distinct from the internal storage key.
//
// A TrackingNumber is NOT unique by construction - the keyspace is 10^6 and
// the generator keeps no state. Uniqueness is enforced by the persistence
// layer's constraint; callers that persist new shipments must retry
// generation on conflict.
//
// Example:
//
//	tn := kernel.NewRandomTrackingNumber()
//	fmt.Println(tn.String()) // e.g. "RS042917"
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewRandomTrackingNumber generates a tracking number with six uniformly
// random decimal digits. The generator is stateless and side-effect free
// apart from consuming entropy.
func NewRandomTrackingNumber() TrackingNumber {
	return TrackingNumber{
		value: fmt.Sprintf("%s%0*d", TrackingNumberPrefix, trackingNumberDigits, rand.IntN(1_000_000)), //nolint:gosec // identifier, not a secret
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingNumberFromString parses a tracking number from its string form.
// Returns a ValueIsInvalidError if the string does not match RS followed by
// exactly six digits. Used when reconstructing shipments from persistence or
// when parsing identifiers from request paths.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match %s", s, trackingNumberPattern.String()),
		)
	}

	return TrackingNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the tracking number in its canonical form, e.g. "RS123456".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was properly constructed.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}
