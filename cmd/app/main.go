package main

import (
	"fmt"
	"os"
	"strings"

	"shipments/cmd"
	httpadapter "shipments/internal/adapters/in/http"
	"shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("cannot start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:   goDotEnvVariable("JWT_SECRET"),
		JWTTTL:      goDotEnvVariable("JWT_TTL"),
		CORSOrigins: goDotEnvVariable("CORS_ORIGINS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &userrepo.UserDTO{}); err != nil {
		log.Fatalf("cannot run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	if config.CORSOrigins != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: strings.Split(config.CORSOrigins, ","),
		}))
	}

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateBookShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetOwnerShipmentsQueryHandler(),
		app.CreateSearchShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e, app.TokenProvider())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
