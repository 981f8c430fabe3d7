package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTierFromString(t *testing.T) {
	standard, err := shipment.ServiceTierFromString("Standard")
	require.NoError(t, err)
	assert.Equal(t, shipment.TierStandard, standard)

	express, err := shipment.ServiceTierFromString("Express")
	require.NoError(t, err)
	assert.Equal(t, shipment.TierExpress, express)

	for _, input := range []string{"", "standard", "Priority", "EXPRESS"} {
		_, err = shipment.ServiceTierFromString(input)
		require.Error(t, err, input)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestServiceTier_Validate(t *testing.T) {
	require.NoError(t, shipment.TierStandard.Validate())
	require.NoError(t, shipment.TierExpress.Validate())
	require.Error(t, shipment.TierUnknown.Validate())
	require.Error(t, shipment.ServiceTier(9).Validate())
}

func TestServiceTier_String(t *testing.T) {
	assert.Equal(t, "Standard", shipment.TierStandard.String())
	assert.Equal(t, "Express", shipment.TierExpress.String())
	assert.Equal(t, "Unknown", shipment.TierUnknown.String())
}
