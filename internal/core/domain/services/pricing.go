package services

import (
	"fmt"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing constants, in currency-agnostic units.
var (
	// baseCharge is added to every shipment regardless of weight.
	baseCharge = decimal.NewFromInt(20)

	// ratePerUnit is charged per billing unit of weight.
	ratePerUnit = decimal.NewFromInt(45)

	// expressFee is the fixed surcharge for the Express tier.
	expressFee = decimal.NewFromInt(50)

	// taxRate is the tax fraction applied to the subtotal.
	taxRate = decimal.RequireFromString("0.18")

	// billingUnitKg is the weight granularity: any fractional excess
	// counts as a full unit.
	billingUnitKg = decimal.RequireFromString("0.5")
)

// PricingEngine computes the monetary breakdown of a shipment from its
// weight and service tier. It is a pure, deterministic domain service:
// identical inputs always produce identical charges, and it has no state
// and no side effects.
//
// Algorithm:
//  1. units = ceil(weightKg / 0.5) - billing unit is half a kilogram
//  2. subtotal = 20 + units * 45, plus 50 for the Express tier
//  3. tax = round(subtotal * 0.18, 2)
//  4. total = round(subtotal + tax, 2); subtotal is also rounded to 2 places
//
// Rounding is round-half-up (decimal.Round rounds half away from zero,
// which is identical for the non-negative amounts produced here).
//
// Example:
//
//	engine := services.NewPricingEngine()
//	charges, err := engine.Calculate(decimal.NewFromFloat(1.0), shipment.TierExpress)
//	if err != nil {
//	    // weight or tier was invalid
//	}
//	fmt.Println(charges.Total()) // 188.80
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Calculate computes the charges for the given weight and service tier.
//
// Returns a ValueIsInvalidError if the weight is not strictly positive or
// the tier is outside the enumerated set.
func (PricingEngine) Calculate(weightKg decimal.Decimal, tier shipment.ServiceTier) (shipment.Charges, error) {
	if !weightKg.IsPositive() {
		return shipment.Charges{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is not greater than 0", weightKg),
		)
	}
	if err := tier.Validate(); err != nil {
		return shipment.Charges{}, err
	}

	units := weightKg.Div(billingUnitKg).Ceil()

	subtotal := baseCharge.Add(units.Mul(ratePerUnit))
	if tier == shipment.TierExpress {
		subtotal = subtotal.Add(expressFee)
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)
	subtotal = subtotal.Round(2)

	return shipment.NewCharges(subtotal, tax, total)
}
