package shipment_test

import (
	"testing"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParty(t *testing.T, name, city string) shipment.Party {
	t.Helper()
	party, err := shipment.NewParty(name, "12 MG Road", city, "Karnataka", "560001", "India", "+91-9800000000")
	require.NoError(t, err)
	return party
}

func mustParcel(t *testing.T) shipment.Parcel {
	t.Helper()
	parcel, err := shipment.NewParcel(
		decimal.NewFromFloat(1.2),
		decimal.NewFromInt(30),
		decimal.NewFromInt(20),
		decimal.NewFromInt(40),
	)
	require.NoError(t, err)
	return parcel
}

func mustCharges(t *testing.T) shipment.Charges {
	t.Helper()
	charges, err := shipment.NewCharges(
		decimal.RequireFromString("155.00"),
		decimal.RequireFromString("27.90"),
		decimal.RequireFromString("182.90"),
	)
	require.NoError(t, err)
	return charges
}

func bookTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	tn, err := kernel.TrackingNumberFromString("RS123456")
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		tn,
		kernel.NewUUID(),
		mustParty(t, "Asha Rao", "Bengaluru"),
		mustParty(t, "Vikram Shah", "Mumbai"),
		mustParcel(t),
		shipment.TierStandard,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		mustCharges(t),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment_SeedsBookingEvent(t *testing.T) {
	s := bookTestShipment(t)

	require.NoError(t, s.Validate())
	assert.Equal(t, shipment.StatusBooked, s.Status())

	history := s.TrackingHistory()
	require.Len(t, history, 1)
	assert.Equal(t, shipment.StatusBooked, history[0].Stage())
	assert.Equal(t, "Bengaluru", history[0].Location(), "booking event is located at the sender's city")
	assert.Equal(t, shipment.BookingActivity, history[0].Activity())
	assert.Equal(t, history[0].OccurredAt(), s.BookedAt())
}

func TestNewShipment_Validation(t *testing.T) {
	tn, err := kernel.TrackingNumberFromString("RS123456")
	require.NoError(t, err)

	t.Run("zero-value tracking number", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			kernel.TrackingNumber{},
			kernel.NewUUID(),
			mustParty(t, "Asha Rao", "Bengaluru"),
			mustParty(t, "Vikram Shah", "Mumbai"),
			mustParcel(t),
			shipment.TierStandard,
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			mustCharges(t),
		)
		require.Error(t, err)
	})

	t.Run("invalid service tier", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			tn,
			kernel.NewUUID(),
			mustParty(t, "Asha Rao", "Bengaluru"),
			mustParty(t, "Vikram Shah", "Mumbai"),
			mustParcel(t),
			shipment.TierUnknown,
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			mustCharges(t),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero pickup date", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(),
			tn,
			kernel.NewUUID(),
			mustParty(t, "Asha Rao", "Bengaluru"),
			mustParty(t, "Vikram Shah", "Mumbai"),
			mustParcel(t),
			shipment.TierStandard,
			time.Time{},
			mustCharges(t),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestShipment_TransitionTo(t *testing.T) {
	t.Run("appends event and updates status", func(t *testing.T) {
		s := bookTestShipment(t)

		require.NoError(t, s.TransitionTo(shipment.StatusInTransit, "Mumbai hub", ""))

		assert.Equal(t, shipment.StatusInTransit, s.Status())
		history := s.TrackingHistory()
		require.Len(t, history, 2)
		assert.Equal(t, shipment.StatusInTransit, history[1].Stage())
		assert.Equal(t, "Mumbai hub", history[1].Location())
		assert.Equal(t, "Status updated to In Transit", history[1].Activity())
	})

	t.Run("status always equals last history stage", func(t *testing.T) {
		s := bookTestShipment(t)

		transitions := []shipment.Status{
			shipment.StatusInTransit,
			shipment.StatusOutForDelivery,
			shipment.StatusDelivered,
			shipment.StatusInTransit, // corrections out of Delivered are allowed
			shipment.StatusCancelled,
		}
		for _, next := range transitions {
			require.NoError(t, s.TransitionTo(next, "", ""))
			history := s.TrackingHistory()
			assert.Equal(t, s.Status(), history[len(history)-1].Stage())
		}
		assert.Len(t, s.TrackingHistory(), len(transitions)+1)
	})

	t.Run("history timestamps are non-decreasing", func(t *testing.T) {
		s := bookTestShipment(t)

		require.NoError(t, s.TransitionTo(shipment.StatusInTransit, "", ""))
		require.NoError(t, s.TransitionTo(shipment.StatusDelivered, "", ""))

		history := s.TrackingHistory()
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].OccurredAt().Before(history[i-1].OccurredAt()))
		}
	})

	t.Run("invalid status leaves shipment unmodified", func(t *testing.T) {
		s := bookTestShipment(t)

		err := s.TransitionTo(shipment.StatusUnknown, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.StatusBooked, s.Status())
		assert.Len(t, s.TrackingHistory(), 1)
	})
}

func TestShipment_TrackingHistoryIsACopy(t *testing.T) {
	s := bookTestShipment(t)

	history := s.TrackingHistory()
	history[0] = shipment.TrackingEvent{}

	fresh := s.TrackingHistory()
	require.NoError(t, fresh[0].Validate())
}

func TestRestoreShipment(t *testing.T) {
	tn, err := kernel.TrackingNumberFromString("RS654321")
	require.NoError(t, err)
	bookedAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	bookingEvent, err := shipment.RestoreTrackingEvent(
		shipment.StatusBooked, bookedAt, "Bengaluru", shipment.BookingActivity)
	require.NoError(t, err)
	transitEvent, err := shipment.RestoreTrackingEvent(
		shipment.StatusInTransit, bookedAt.Add(time.Hour), "", "Status updated to In Transit")
	require.NoError(t, err)

	restore := func(status shipment.Status, history []shipment.TrackingEvent) (*shipment.Shipment, error) {
		return shipment.RestoreShipment(
			kernel.NewUUID(),
			tn,
			kernel.NewUUID(),
			mustParty(t, "Asha Rao", "Bengaluru"),
			mustParty(t, "Vikram Shah", "Mumbai"),
			mustParcel(t),
			shipment.TierExpress,
			time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			bookedAt,
			status,
			mustCharges(t),
			history,
		)
	}

	t.Run("restores consistent state", func(t *testing.T) {
		s, err := restore(shipment.StatusInTransit, []shipment.TrackingEvent{bookingEvent, transitEvent})

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusInTransit, s.Status())
		assert.Len(t, s.TrackingHistory(), 2)
	})

	t.Run("rejects empty history", func(t *testing.T) {
		_, err := restore(shipment.StatusBooked, nil)

		require.ErrorIs(t, err, shipment.ErrEmptyTrackingHistory)
	})

	t.Run("rejects status diverging from last event", func(t *testing.T) {
		_, err := restore(shipment.StatusDelivered, []shipment.TrackingEvent{bookingEvent, transitEvent})

		require.ErrorIs(t, err, shipment.ErrStatusHistoryMismatch)
	})
}

func TestShipment_Validate_NotConstructed(t *testing.T) {
	var s shipment.Shipment

	require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
}
