package http

import (
	"time"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
)

// Error is the uniform JSON error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignupResponse confirms a created account.
type SignupResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token and profile.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
}

// PartyPayload is one contact/address block in booking requests and
// shipment responses.
type PartyPayload struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// ParcelPayload carries package weight and dimensions as decimal strings.
type ParcelPayload struct {
	WeightKg string `json:"weightKg"`
	WidthCm  string `json:"widthCm"`
	HeightCm string `json:"heightCm"`
	LengthCm string `json:"lengthCm"`
}

// BookShipmentRequest is the body of POST /api/shipments.
type BookShipmentRequest struct {
	Sender      PartyPayload  `json:"sender"`
	Receiver    PartyPayload  `json:"receiver"`
	Parcel      ParcelPayload `json:"parcel"`
	ServiceTier string        `json:"serviceTier"`
	PickupDate  string        `json:"pickupDate"`
}

// UpdateStatusRequest is the body of PUT /api/admin/shipments/:trackingNumber/status.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Activity string `json:"activity"`
}

// ChargesPayload carries the priced amounts as fixed two-decimal strings.
type ChargesPayload struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// TrackingEventPayload is one ledger entry in a shipment response.
type TrackingEventPayload struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Activity  string    `json:"activity,omitempty"`
}

// ShipmentPayload is the full shipment representation returned by the API.
type ShipmentPayload struct {
	TrackingNumber  string                 `json:"trackingNumber"`
	Status          string                 `json:"status"`
	Sender          PartyPayload           `json:"sender"`
	Receiver        PartyPayload           `json:"receiver"`
	Parcel          ParcelPayload          `json:"parcel"`
	ServiceTier     string                 `json:"serviceTier"`
	PickupDate      string                 `json:"pickupDate"`
	BookedAt        time.Time              `json:"bookedAt"`
	Charges         ChargesPayload         `json:"charges"`
	TrackingHistory []TrackingEventPayload `json:"trackingHistory"`
}

// ShipmentPageResponse is one page of the admin search listing.
type ShipmentPageResponse struct {
	Shipments   []ShipmentPayload `json:"shipments"`
	TotalCount  int64             `json:"totalCount"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

const pickupDateLayout = "2006-01-02"

func shipmentPayloadFromDomain(s *shipment.Shipment) ShipmentPayload {
	history := make([]TrackingEventPayload, 0, len(s.TrackingHistory()))
	for _, event := range s.TrackingHistory() {
		history = append(history, TrackingEventPayload{
			Status:    event.Stage().String(),
			Timestamp: event.OccurredAt(),
			Location:  event.Location(),
			Activity:  event.Activity(),
		})
	}

	return ShipmentPayload{
		TrackingNumber: s.TrackingNumber().String(),
		Status:         s.Status().String(),
		Sender:         partyPayloadFromDomain(s.Sender()),
		Receiver:       partyPayloadFromDomain(s.Receiver()),
		Parcel: ParcelPayload{
			WeightKg: s.Parcel().WeightKg().String(),
			WidthCm:  s.Parcel().WidthCm().String(),
			HeightCm: s.Parcel().HeightCm().String(),
			LengthCm: s.Parcel().LengthCm().String(),
		},
		ServiceTier: s.ServiceTier().String(),
		PickupDate:  s.PickupDate().Format(pickupDateLayout),
		BookedAt:    s.BookedAt(),
		Charges: ChargesPayload{
			Subtotal: s.Charges().Subtotal().StringFixed(2),
			Tax:      s.Charges().Tax().StringFixed(2),
			Total:    s.Charges().Total().StringFixed(2),
		},
		TrackingHistory: history,
	}
}

func partyPayloadFromDomain(party shipment.Party) PartyPayload {
	return PartyPayload{
		Name:    party.Name(),
		Street:  party.Street(),
		City:    party.City(),
		State:   party.State(),
		Pincode: party.Pincode(),
		Country: party.Country(),
		Phone:   party.Phone(),
	}
}

func shipmentPayloadFromResponse(resp queries.ShipmentResponse) ShipmentPayload {
	history := make([]TrackingEventPayload, 0, len(resp.History))
	for _, event := range resp.History {
		history = append(history, TrackingEventPayload(event))
	}

	return ShipmentPayload{
		TrackingNumber: resp.TrackingNumber,
		Status:         resp.Status,
		Sender:         PartyPayload(resp.Sender),
		Receiver:       PartyPayload(resp.Receiver),
		Parcel: ParcelPayload{
			WeightKg: resp.Parcel.WeightKg.String(),
			WidthCm:  resp.Parcel.WidthCm.String(),
			HeightCm: resp.Parcel.HeightCm.String(),
			LengthCm: resp.Parcel.LengthCm.String(),
		},
		ServiceTier: resp.ServiceTier,
		PickupDate:  resp.PickupDate.Format(pickupDateLayout),
		BookedAt:    resp.BookedAt,
		Charges: ChargesPayload{
			Subtotal: resp.Charges.Subtotal.StringFixed(2),
			Tax:      resp.Charges.Tax.StringFixed(2),
			Total:    resp.Charges.Total.StringFixed(2),
		},
		TrackingHistory: history,
	}
}
