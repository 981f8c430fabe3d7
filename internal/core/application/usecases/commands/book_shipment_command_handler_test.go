package commands_test

import (
	"errors"
	"testing"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/domain/services"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookCommand(t *testing.T) commands.BookShipmentCommand {
	t.Helper()
	cmd, err := commands.NewBookShipmentCommand(
		kernel.NewUUID(),
		testParty(t, "Asha Rao", "Mumbai"),
		testParty(t, "Vikram Singh", "Delhi"),
		testParcel(t, "2.5"),
		shipment.TierStandard,
		testPickupDate(),
	)
	require.NoError(t, err)
	return cmd
}

func TestBookShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := bookCommand(t)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBookShipmentCommandHandler(factory, services.NewPricingEngine())
	booked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, booked)
	assert.Equal(t, shipment.StatusBooked, booked.Status())
	assert.Equal(t, cmd.OwnerID(), booked.OwnerID())
	assert.Len(t, booked.TrackingHistory(), 1)
	// 2.5 kg standard: 20 + 45*5 = 245.00, tax 44.10, total 289.10
	assert.Equal(t, "289.10", booked.Charges().Total().StringFixed(2))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBookShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.BookShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewBookShipmentCommandHandler(factory, services.NewPricingEngine())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestBookShipmentCommandHandler_Handle_RetriesOnTrackingNumberConflict(t *testing.T) {
	ctx := t.Context()
	cmd := bookCommand(t)

	conflict := errs.NewConflictError("trackingNumber", "RS123456")

	firstRepo := new(MockShipmentRepository)
	firstUoW := new(MockShipmentUoW)
	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("ShipmentRepository").Return(firstRepo).Once(),
		firstRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(conflict).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	secondRepo := new(MockShipmentRepository)
	secondUoW := new(MockShipmentUoW)
	mock.InOrder(
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("ShipmentRepository").Return(secondRepo).Once(),
		secondRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	h := commands.NewBookShipmentCommandHandler(factory, services.NewPricingEngine())
	booked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, booked)
	firstUoW.AssertExpectations(t)
	secondUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBookShipmentCommandHandler_Handle_RetriesExhausted(t *testing.T) {
	ctx := t.Context()
	cmd := bookCommand(t)

	conflict := errs.NewConflictError("trackingNumber", "RS123456")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Times(5)
	uow.On("ShipmentRepository").Return(repo).Times(5)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(conflict).Times(5)
	uow.On("Rollback", ctx).Return(nil).Times(5)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Times(5)

	h := commands.NewBookShipmentCommandHandler(factory, services.NewPricingEngine())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRetriesExhausted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBookShipmentCommandHandler_Handle_NonConflictErrorIsNotRetried(t *testing.T) {
	ctx := t.Context()
	cmd := bookCommand(t)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBookShipmentCommandHandler(factory, services.NewPricingEngine())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrRetriesExhausted)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestBookShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := bookCommand(t)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewBookShipmentCommandHandler(factory, services.NewPricingEngine())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
