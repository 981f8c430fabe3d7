package services_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/domain/services"
	"shipments/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEngine_Calculate(t *testing.T) {
	engine := services.NewPricingEngine()

	testCases := []struct {
		name     string
		weightKg string
		tier     shipment.ServiceTier
		subtotal string
		tax      string
		total    string
	}{
		{
			name:     "half kilogram standard is one unit",
			weightKg: "0.5",
			tier:     shipment.TierStandard,
			subtotal: "65.00",
			tax:      "11.70",
			total:    "76.70",
		},
		{
			name:     "fractional excess rounds up to a full unit",
			weightKg: "0.6",
			tier:     shipment.TierStandard,
			subtotal: "110.00",
			tax:      "19.80",
			total:    "129.80",
		},
		{
			name:     "express adds fixed surcharge",
			weightKg: "1.0",
			tier:     shipment.TierExpress,
			subtotal: "160.00",
			tax:      "28.80",
			total:    "188.80",
		},
		{
			name:     "tiny weight still bills one unit",
			weightKg: "0.01",
			tier:     shipment.TierStandard,
			subtotal: "65.00",
			tax:      "11.70",
			total:    "76.70",
		},
		{
			name:     "ten kilograms standard",
			weightKg: "10",
			tier:     shipment.TierStandard,
			subtotal: "920.00",
			tax:      "165.60",
			total:    "1085.60",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			charges, err := engine.Calculate(decimal.RequireFromString(tc.weightKg), tc.tier)

			require.NoError(t, err)
			assert.Equal(t, tc.subtotal, charges.Subtotal().StringFixed(2))
			assert.Equal(t, tc.tax, charges.Tax().StringFixed(2))
			assert.Equal(t, tc.total, charges.Total().StringFixed(2))
		})
	}
}

func TestPricingEngine_Calculate_IsDeterministic(t *testing.T) {
	engine := services.NewPricingEngine()
	weight := decimal.RequireFromString("3.3")

	first, err := engine.Calculate(weight, shipment.TierExpress)
	require.NoError(t, err)

	for range 10 {
		again, err := engine.Calculate(weight, shipment.TierExpress)
		require.NoError(t, err)
		assert.True(t, first.Subtotal().Equal(again.Subtotal()))
		assert.True(t, first.Tax().Equal(again.Tax()))
		assert.True(t, first.Total().Equal(again.Total()))
	}
}

func TestPricingEngine_Calculate_RoundingLaw(t *testing.T) {
	engine := services.NewPricingEngine()

	// Across a spread of weights the outputs always satisfy
	// tax = round(subtotal*0.18, 2) and total = round(subtotal+tax, 2).
	for _, w := range []string{"0.1", "0.5", "0.51", "1", "2.49", "7.77", "49.99"} {
		for _, tier := range []shipment.ServiceTier{shipment.TierStandard, shipment.TierExpress} {
			charges, err := engine.Calculate(decimal.RequireFromString(w), tier)
			require.NoError(t, err)

			expectedTax := charges.Subtotal().Mul(decimal.RequireFromString("0.18")).Round(2)
			assert.True(t, charges.Tax().Equal(expectedTax), "weight %s tier %s", w, tier)
			assert.True(t, charges.Total().Equal(charges.Subtotal().Add(charges.Tax()).Round(2)))
		}
	}
}

func TestPricingEngine_Calculate_InvalidInput(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("zero weight", func(t *testing.T) {
		_, err := engine.Calculate(decimal.Zero, shipment.TierStandard)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := engine.Calculate(decimal.NewFromInt(-1), shipment.TierStandard)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := engine.Calculate(decimal.NewFromInt(1), shipment.TierUnknown)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
