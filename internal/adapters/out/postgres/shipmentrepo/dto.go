// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The tracking history ledger is stored inline as a
// jsonb column so the status and its history always change in one row write.
package shipmentrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking number carries a unique index; inserting a
// colliding number fails at the constraint, which is how callers detect
// identifier collisions.
type ShipmentDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TrackingNumber string             `gorm:"type:varchar(16);uniqueIndex;not null"`
	OwnerID        uuid.UUID          `gorm:"type:uuid;index;not null"`
	Sender         PartyDTO           `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver       PartyDTO           `gorm:"embedded;embeddedPrefix:receiver_"`
	WeightKg       decimal.Decimal    `gorm:"type:numeric(10,2)"`
	WidthCm        decimal.Decimal    `gorm:"type:numeric(10,2)"`
	HeightCm       decimal.Decimal    `gorm:"type:numeric(10,2)"`
	LengthCm       decimal.Decimal    `gorm:"type:numeric(10,2)"`
	ServiceTier    string             `gorm:"type:varchar(16)"`
	PickupDate     time.Time          `gorm:"type:date"`
	BookedAt       time.Time          `gorm:"type:timestamptz"`
	Status         string             `gorm:"type:varchar(32);index"`
	Subtotal       decimal.Decimal    `gorm:"type:numeric(10,2)"`
	Tax            decimal.Decimal    `gorm:"type:numeric(10,2)"`
	Total          decimal.Decimal    `gorm:"type:numeric(10,2)"`
	TrackingHistory TrackingHistoryDTO `gorm:"type:jsonb"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents one embedded contact/address block within the
// shipments table.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(128)"`
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(128)"`
	State   string `gorm:"type:varchar(128)"`
	Pincode string `gorm:"type:varchar(16)"`
	Country string `gorm:"type:varchar(128)"`
	Phone   string `gorm:"type:varchar(32)"`
}

// TrackingEventDTO is one ledger entry within the jsonb history document.
type TrackingEventDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Activity  string    `json:"activity,omitempty"`
}

// TrackingHistoryDTO stores the append-only tracking ledger as jsonb.
type TrackingHistoryDTO []TrackingEventDTO

// Value serializes the history for the jsonb column.
func (h TrackingHistoryDTO) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan deserializes the jsonb column into the history slice.
func (h *TrackingHistoryDTO) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported tracking history column type %T", value)
	}
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	history := make(TrackingHistoryDTO, 0, len(aggregate.TrackingHistory()))
	for _, event := range aggregate.TrackingHistory() {
		history = append(history, TrackingEventDTO{
			Status:    event.Stage().String(),
			Timestamp: event.OccurredAt(),
			Location:  event.Location(),
			Activity:  event.Activity(),
		})
	}

	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		OwnerID:        aggregate.OwnerID().Bytes(),
		Sender:         partyFromDomain(aggregate.Sender()),
		Receiver:       partyFromDomain(aggregate.Receiver()),
		WeightKg:       aggregate.Parcel().WeightKg(),
		WidthCm:        aggregate.Parcel().WidthCm(),
		HeightCm:       aggregate.Parcel().HeightCm(),
		LengthCm:       aggregate.Parcel().LengthCm(),
		ServiceTier:    aggregate.ServiceTier().String(),
		PickupDate:     aggregate.PickupDate(),
		BookedAt:       aggregate.BookedAt(),
		Status:         aggregate.Status().String(),
		Subtotal:       aggregate.Charges().Subtotal(),
		Tax:            aggregate.Charges().Tax(),
		Total:          aggregate.Charges().Total(),
		TrackingHistory: history,
	}
}

func partyFromDomain(party shipment.Party) PartyDTO {
	return PartyDTO{
		Name:    party.Name(),
		Street:  party.Street(),
		City:    party.City(),
		State:   party.State(),
		Pincode: party.Pincode(),
		Country: party.Country(),
		Phone:   party.Phone(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate, including the tracking ledger,
// using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}

	receiver, err := partyToDomain(dto.Receiver)
	if err != nil {
		return nil, err
	}

	parcel, err := shipment.NewParcel(dto.WeightKg, dto.WidthCm, dto.HeightCm, dto.LengthCm)
	if err != nil {
		return nil, err
	}

	tier, err := shipment.ServiceTierFromString(dto.ServiceTier)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	charges, err := shipment.NewCharges(dto.Subtotal, dto.Tax, dto.Total)
	if err != nil {
		return nil, err
	}

	history := make([]shipment.TrackingEvent, 0, len(dto.TrackingHistory))
	for _, eventDTO := range dto.TrackingHistory {
		stage, stageErr := shipment.StatusFromString(eventDTO.Status)
		if stageErr != nil {
			return nil, stageErr
		}

		event, eventErr := shipment.RestoreTrackingEvent(
			stage, eventDTO.Timestamp, eventDTO.Location, eventDTO.Activity,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	return shipment.RestoreShipment(
		id, trackingNumber, ownerID,
		sender, receiver, parcel, tier,
		dto.PickupDate, dto.BookedAt, status, charges, history,
	)
}

func partyToDomain(dto PartyDTO) (shipment.Party, error) {
	return shipment.NewParty(dto.Name, dto.Street, dto.City, dto.State, dto.Pincode, dto.Country, dto.Phone)
}
