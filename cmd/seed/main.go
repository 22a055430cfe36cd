// Command seed wipes the database and loads a fresh demo data set, the same
// operation the POST /api/data/reset route performs, runnable without the
// server for local setup and CI fixtures.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetboard/cmd"
	"fleetboard/internal/adapters/out/postgres/driverrepo"
	"fleetboard/internal/adapters/out/postgres/orderrepo"
	"fleetboard/internal/core/application/usecases/commands"
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

	handler, err := app.CreateResetDataCommandHandler()
	if err != nil {
		log.Fatalf("Error creating reset data handler: %v", err)
	}

	command, err := commands.NewResetDataCommand()
	if err != nil {
		log.Fatalf("Error constructing reset command: %v", err)
	}

	result, err := handler.Handle(context.Background(), command)
	if err != nil {
		log.Fatalf("Error seeding demo data: %v", err)
	}

	log.Infof("Seeded %d drivers and %d orders", result.DriversCreated, result.OrdersCreated)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file found, using environment variables")
	}

	return cmd.Config{
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "fleetboard"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
