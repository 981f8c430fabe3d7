// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers read the
// shipments and users tables directly and map rows into response structs.
package queries

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves one shipment by tracking number on behalf of a
// requester. Only the booking owner or an admin may see the detail.
//
// Example:
//
//	query, _ := NewGetShipmentQuery(trackingNumber, claims)
//	handler := NewGetShipmentQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//
//	fmt.Printf("%s is %s\n", detail.TrackingNumber, detail.Status)
type GetShipmentQuery struct {
	trackingNumber kernel.TrackingNumber
	requester      ports.Claims

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment's detail.
// Validates the tracking number and the requester identity.
func NewGetShipmentQuery(trackingNumber kernel.TrackingNumber, requester ports.Claims) (GetShipmentQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	if err := requester.UserID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		trackingNumber: trackingNumber,
		requester:      requester,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the shipment identifier being looked up.
func (q GetShipmentQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// Requester returns the authenticated identity of the caller.
func (q GetShipmentQuery) Requester() ports.Claims {
	return q.requester
}
