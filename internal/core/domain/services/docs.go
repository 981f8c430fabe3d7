// Package services contains stateless domain services of the booking system.
// Domain services hold business logic that does not naturally belong to a
// single aggregate; currently that is the pricing engine, which computes the
// monetary breakdown of a shipment from its weight and service tier.
package services
