package shipment

import (
	"errors"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when validating a zero-value Party.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError("party must be created via NewParty")

// Party is a validated contact and address block for the sender or receiver
// of a shipment. Field contents are opaque to the domain; the only rule is
// that every field is present and non-empty.
type Party struct { //nolint:recvcheck //using for validation
	name    string
	street  string
	city    string
	state   string
	pincode string
	country string
	phone   string

	guard guard.ConstructorGuard
}

// NewParty creates a contact/address block. All fields are required;
// each missing field is reported in the joined error.
func NewParty(name, street, city, state, pincode, country, phone string) (Party, error) {
	p := Party{
		name:    name,
		street:  street,
		city:    city,
		state:   state,
		pincode: pincode,
		country: country,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireField("name", name),
		requireField("street", street),
		requireField("city", city),
		requireField("state", state),
		requireField("pincode", pincode),
		requireField("country", country),
		requireField("phone", phone),
	); err != nil {
		return Party{}, err
	}

	return p, nil
}

func requireField(field, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}

// Name returns the contact name.
func (p Party) Name() string { return p.name }

// Street returns the street line of the address.
func (p Party) Street() string { return p.street }

// City returns the city of the address.
func (p Party) City() string { return p.city }

// State returns the state or region of the address.
func (p Party) State() string { return p.state }

// Pincode returns the postal code of the address.
func (p Party) Pincode() string { return p.pincode }

// Country returns the country of the address.
func (p Party) Country() string { return p.country }

// Phone returns the contact phone number.
func (p Party) Phone() string { return p.phone }

// Validate checks that the party was properly constructed.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}
