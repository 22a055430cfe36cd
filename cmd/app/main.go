package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetboard/cmd"
	httpadapter "fleetboard/internal/adapters/in/http"
	"fleetboard/internal/adapters/out/postgres/driverrepo"
	"fleetboard/internal/adapters/out/postgres/orderrepo"
	"fleetboard/internal/jobs"
	"fleetboard/internal/observability"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &driverrepo.DriverDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateCountOrdersByStatusQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file found, using environment variables")
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "fleetboard"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
		AppEnv:     envOrDefault("APP_ENV", "development"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	resetDataHandler, err := app.CreateResetDataCommandHandler()
	if err != nil {
		log.Fatalf("Error creating reset data handler: %v", err)
	}

	sqlDB, err := app.SQLDB()
	if err != nil {
		log.Fatalf("Error acquiring database handle: %v", err)
	}

	server := httpadapter.NewServer(httpadapter.ServerDeps{
		CreateOrderHandler:  app.CreateCreateOrderCommandHandler(),
		UpdateOrderHandler:  app.CreateUpdateOrderCommandHandler(),
		DeleteOrderHandler:  app.CreateDeleteOrderCommandHandler(),
		AssignDriverHandler: app.CreateAssignDriverCommandHandler(),
		CreateDriverHandler: app.CreateCreateDriverCommandHandler(),
		UpdateDriverHandler: app.CreateUpdateDriverCommandHandler(),
		DeleteDriverHandler: app.CreateDeleteDriverCommandHandler(),
		ResetDataHandler:    resetDataHandler,

		GetOrdersHandler:         app.CreateGetOrdersQueryHandler(),
		GetOrderHandler:          app.CreateGetOrderQueryHandler(),
		GetOrdersByDriverHandler: app.CreateGetOrdersByDriverQueryHandler(),
		GetDriversHandler:        app.CreateGetDriversQueryHandler(),
		GetDriverHandler:         app.CreateGetDriverQueryHandler(),
		CountOrdersHandler:       app.CreateCountOrdersByStatusQueryHandler(),

		SQLDB:      sqlDB,
		Production: configs.IsProduction(),
	})

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(observability.RequestMetrics())

	server.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
