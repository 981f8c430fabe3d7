package cmd

import (
	"log/slog"
	"os"
	"time"

	"shipments/internal/adapters/out/auth"
	"shipments/internal/adapters/out/postgres"
	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/services"
	"shipments/internal/core/ports"
	"shipments/internal/jobs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	tokenProvider *auth.JWTTokenProvider
	pricing       services.PricingEngine
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	ttl := defaultTokenTTL
	if config.JWTTTL != "" {
		parsed, err := time.ParseDuration(config.JWTTTL)
		if err != nil {
			log.Fatalf("invalid JWT_TTL: %v", err)
		}
		ttl = parsed
	}

	tokenProvider, err := auth.NewJWTTokenProvider(config.JWTSecret, ttl)
	if err != nil {
		log.Fatalf("cannot create token provider: %v", err)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenProvider: tokenProvider,
		pricing:       services.NewPricingEngine(),
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) TokenProvider() ports.TokenProvider {
	return c.tokenProvider
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateBookShipmentCommandHandler() commands.BookShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookShipmentCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB, c.tokenProvider)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerShipmentsQueryHandler() queries.GetOwnerShipmentsQueryHandler {
	return queries.NewGetOwnerShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchShipmentsQueryHandler() queries.SearchShipmentsQueryHandler {
	return queries.NewSearchShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDuePickupsQueryHandler() queries.GetDuePickupsQueryHandler {
	return queries.NewGetDuePickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDuePickupsQueryHandler(), c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
