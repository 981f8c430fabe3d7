package queries

import (
	"errors"
	"time"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var (
	ErrGetDuePickupsQueryIsNotConstructed = errors.New(
		"GetDuePickupsQuery must be created via NewGetDuePickupsQuery constructor",
	)
)

// GetDuePickupsQuery finds booked shipments whose pickup date has arrived.
// Backs the morning pickup reminder job; the ledger itself is never touched.
type GetDuePickupsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetDuePickupsQuery creates a query for pickups due on or before asOf.
func NewGetDuePickupsQuery(asOf time.Time) (GetDuePickupsQuery, error) {
	if asOf.IsZero() {
		return GetDuePickupsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetDuePickupsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDuePickupsQueryIsNotConstructed if validation fails.
func (q GetDuePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetDuePickupsQueryIsNotConstructed)
}

// AsOf returns the reference date for due pickups.
func (q GetDuePickupsQuery) AsOf() time.Time {
	return q.asOf
}

// DuePickupResponse identifies one shipment awaiting pickup.
type DuePickupResponse struct {
	TrackingNumber string
	SenderName     string
	SenderCity     string
	PickupDate     time.Time
}
