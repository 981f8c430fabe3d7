package shipment

import (
	"errors"
	"fmt"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrParcelIsNotConstructed is returned when validating a zero-value Parcel.
var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel")

// Parcel describes the physical package being shipped: weight in kilograms
// and dimensions in centimeters. All measurements must be strictly positive.
//
// Measurements are decimals, mirroring the numeric(10,2) columns they are
// persisted to; the weight feeds the pricing engine's half-kilogram billing.
type Parcel struct { //nolint:recvcheck //using for validation
	weightKg decimal.Decimal
	widthCm  decimal.Decimal
	heightCm decimal.Decimal
	lengthCm decimal.Decimal

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel description. Every measurement must be greater
// than zero; each violation is reported in the joined error.
func NewParcel(weightKg, widthCm, heightCm, lengthCm decimal.Decimal) (Parcel, error) {
	p := Parcel{
		weightKg: weightKg,
		widthCm:  widthCm,
		heightCm: heightCm,
		lengthCm: lengthCm,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirePositive("weight", weightKg),
		requirePositive("width", widthCm),
		requirePositive("height", heightCm),
		requirePositive("length", lengthCm),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

func requirePositive(field string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			field,
			fmt.Errorf("%s is not greater than 0", value),
		)
	}
	return nil
}

// WeightKg returns the parcel weight in kilograms.
func (p Parcel) WeightKg() decimal.Decimal { return p.weightKg }

// WidthCm returns the parcel width in centimeters.
func (p Parcel) WidthCm() decimal.Decimal { return p.widthCm }

// HeightCm returns the parcel height in centimeters.
func (p Parcel) HeightCm() decimal.Decimal { return p.heightCm }

// LengthCm returns the parcel length in centimeters.
func (p Parcel) LengthCm() decimal.Decimal { return p.lengthCm }

// Validate checks that the parcel was properly constructed.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}
