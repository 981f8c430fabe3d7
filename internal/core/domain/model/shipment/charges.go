package shipment

import (
	"errors"
	"fmt"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrChargesAreNotConstructed is returned when validating zero-value Charges.
var ErrChargesAreNotConstructed = errs.NewValueIsRequiredError("charges must be created via NewCharges")

// Charges is the monetary breakdown of a shipment: subtotal, tax and total,
// each rounded to two fraction digits. The three amounts are always computed
// together by the pricing engine and never edited independently; Charges
// enforces the arithmetic invariant total = subtotal + tax.
type Charges struct { //nolint:recvcheck //using for validation
	subtotal decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCharges creates a monetary breakdown. All amounts must be non-negative
// and total must equal subtotal plus tax exactly.
func NewCharges(subtotal, tax, total decimal.Decimal) (Charges, error) {
	c := Charges{
		subtotal: subtotal,
		tax:      tax,
		total:    total,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireNonNegative("subtotal", subtotal),
		requireNonNegative("tax", tax),
		requireNonNegative("total", total),
	); err != nil {
		return Charges{}, err
	}

	if !total.Equal(subtotal.Add(tax)) {
		return Charges{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not equal subtotal %s plus tax %s", total, subtotal, tax),
		)
	}

	return c, nil
}

func requireNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			field,
			fmt.Errorf("%s is negative", value),
		)
	}
	return nil
}

// Subtotal returns the pre-tax amount.
func (c Charges) Subtotal() decimal.Decimal { return c.subtotal }

// Tax returns the tax amount.
func (c Charges) Tax() decimal.Decimal { return c.tax }

// Total returns the tax-inclusive amount.
func (c Charges) Total() decimal.Decimal { return c.total }

// Validate checks that the charges were properly constructed.
func (c Charges) Validate() error {
	return c.guard.Validate(ErrChargesAreNotConstructed)
}
