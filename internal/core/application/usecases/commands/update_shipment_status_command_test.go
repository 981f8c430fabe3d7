package commands_test

import (
	"testing"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentStatusCommand_ValidInput(t *testing.T) {
	tn, err := kernel.TrackingNumberFromString("RS123456")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateShipmentStatusCommand(tn, shipment.StatusInTransit, "Mumbai Hub", "Departed facility")
	require.NoError(t, err)
	assert.Equal(t, tn, cmd.TrackingNumber())
	assert.Equal(t, shipment.StatusInTransit, cmd.NewStatus())
	assert.Equal(t, "Mumbai Hub", cmd.Location())
	assert.Equal(t, "Departed facility", cmd.Activity())
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateShipmentStatusCommand_EmptyAnnotationsAllowed(t *testing.T) {
	tn, err := kernel.TrackingNumberFromString("RS123456")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateShipmentStatusCommand(tn, shipment.StatusDelivered, "", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Location())
	assert.Empty(t, cmd.Activity())
}

func TestNewUpdateShipmentStatusCommand_InvalidTrackingNumber(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand(
		kernel.TrackingNumber{}, shipment.StatusInTransit, "", "",
	)
	require.Error(t, err)
}

func TestNewUpdateShipmentStatusCommand_InvalidStatus(t *testing.T) {
	tn, err := kernel.TrackingNumberFromString("RS123456")
	require.NoError(t, err)

	_, err = commands.NewUpdateShipmentStatusCommand(tn, shipment.StatusUnknown, "", "")
	require.Error(t, err)
}

func TestUpdateShipmentStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateShipmentStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateShipmentStatusCommandIsNotConstructed)
}
