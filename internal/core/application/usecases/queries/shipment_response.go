package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"shipments/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentResponse is the read model for a single shipment, including its
// full tracking history. Query handlers build it straight from the shipments
// table without rehydrating the aggregate.
type ShipmentResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	OwnerID        kernel.UUID
	Sender         PartyResponse
	Receiver       PartyResponse
	Parcel         ParcelResponse
	ServiceTier    string
	PickupDate     time.Time
	BookedAt       time.Time
	Status         string
	Charges        ChargesResponse
	History        []TrackingEventResponse
}

// PartyResponse carries one contact/address block of a shipment.
type PartyResponse struct {
	Name    string
	Street  string
	City    string
	State   string
	Pincode string
	Country string
	Phone   string
}

// ParcelResponse carries the package weight and dimensions.
type ParcelResponse struct {
	WeightKg decimal.Decimal
	WidthCm  decimal.Decimal
	HeightCm decimal.Decimal
	LengthCm decimal.Decimal
}

// ChargesResponse carries the priced amounts of a shipment.
type ChargesResponse struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// TrackingEventResponse is one entry of the tracking history ledger.
// The JSON tags mirror the stored jsonb document.
type TrackingEventResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Activity  string    `json:"activity,omitempty"`
}

// shipmentColumns is the select list every shipment read query shares.
// Keep it in sync with scanShipmentRow.
const shipmentColumns = `
	id, tracking_number, owner_id,
	sender_name, sender_street, sender_city, sender_state, sender_pincode, sender_country, sender_phone,
	receiver_name, receiver_street, receiver_city, receiver_state, receiver_pincode, receiver_country, receiver_phone,
	weight_kg, width_cm, height_cm, length_cm,
	service_tier, pickup_date, booked_at, status,
	subtotal, tax, total, tracking_history`

func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, ownerID uuid.UUID
	var history []byte

	err := rows.Scan(
		&id, &resp.TrackingNumber, &ownerID,
		&resp.Sender.Name, &resp.Sender.Street, &resp.Sender.City, &resp.Sender.State,
		&resp.Sender.Pincode, &resp.Sender.Country, &resp.Sender.Phone,
		&resp.Receiver.Name, &resp.Receiver.Street, &resp.Receiver.City, &resp.Receiver.State,
		&resp.Receiver.Pincode, &resp.Receiver.Country, &resp.Receiver.Phone,
		&resp.Parcel.WeightKg, &resp.Parcel.WidthCm, &resp.Parcel.HeightCm, &resp.Parcel.LengthCm,
		&resp.ServiceTier, &resp.PickupDate, &resp.BookedAt, &resp.Status,
		&resp.Charges.Subtotal, &resp.Charges.Tax, &resp.Charges.Total, &history,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return ShipmentResponse{}, err
	}
	if err = json.Unmarshal(history, &resp.History); err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}
