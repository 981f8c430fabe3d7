package postgres_test

import (
	"context"
	"testing"
	"time"

	"shipments/internal/adapters/out/postgres"
	"shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment() *shipment.Shipment {
	sender, err := shipment.NewParty(
		"Asha Rao", "14 MG Road", "Mumbai", "Maharashtra", "400001", "India", "+911234567890",
	)
	suite.Require().NoError(err)
	receiver, err := shipment.NewParty(
		"Vikram Singh", "7 Ring Road", "Delhi", "Delhi", "110001", "India", "+919876543210",
	)
	suite.Require().NoError(err)
	parcel, err := shipment.NewParcel(
		decimal.RequireFromString("1"),
		decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(10),
	)
	suite.Require().NoError(err)
	charges, err := shipment.NewCharges(
		decimal.RequireFromString("110.00"),
		decimal.RequireFromString("19.80"),
		decimal.RequireFromString("129.80"),
	)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewRandomTrackingNumber(), kernel.NewUUID(),
		sender, receiver, parcel, shipment.TierStandard,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), charges,
	)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) countShipments() int64 {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, suite.newShipment()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countShipments())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, suite.newShipment()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countShipments())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConflictInsideTransaction_SurfacesConflictError() {
	ctx := context.Background()
	first := suite.newShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	duplicate, err := shipment.NewShipment(
		kernel.NewUUID(), first.TrackingNumber(), kernel.NewUUID(),
		first.Sender(), first.Receiver(), first.Parcel(), first.ServiceTier(),
		first.PickupDate(), first.Charges(),
	)
	suite.Require().NoError(err)

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err = second.ShipmentRepository().Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(second.Rollback(ctx))

	suite.Equal(int64(1), suite.countShipments())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
