// Package shipment contains the shipment aggregate and its value objects.
//
// The aggregate root is Shipment, which owns the append-only tracking history
// and guarantees that the shipment's status always equals the stage of the
// most recent history entry. Supporting value objects:
//   - Status: the closed set of lifecycle states
//   - ServiceTier: Standard or Express, affects pricing
//   - TrackingEvent: one immutable timestamped record of a status change
//   - Party: a validated sender or receiver contact and address block
//   - Parcel: validated package weight and dimensions
//
// All types follow the constructor-guard pattern: zero values fail validation
// and instances are only created through their New*/Restore* constructors.
package shipment
