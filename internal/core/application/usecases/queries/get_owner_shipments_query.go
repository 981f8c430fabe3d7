package queries

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/guard"
)

var (
	ErrGetOwnerShipmentsQueryIsNotConstructed = errors.New(
		"GetOwnerShipmentsQuery must be created via NewGetOwnerShipmentsQuery constructor",
	)
)

// GetOwnerShipmentsQuery retrieves every shipment booked by one user,
// most recent booking first. Backs the customer's "my shipments" listing.
type GetOwnerShipmentsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerShipmentsQuery creates a query for one user's shipments.
// Validates the owner ID.
func NewGetOwnerShipmentsQuery(ownerID kernel.UUID) (GetOwnerShipmentsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOwnerShipmentsQuery{}, err
	}

	return GetOwnerShipmentsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOwnerShipmentsQueryIsNotConstructed if validation fails.
func (q GetOwnerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerShipmentsQueryIsNotConstructed)
}

// OwnerID returns the user whose shipments are listed.
func (q GetOwnerShipmentsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
