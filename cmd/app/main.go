package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"consolidation/cmd"
	httpin "consolidation/internal/adapters/in/http"
	"consolidation/internal/adapters/out/postgres/loadrepo"
	"consolidation/internal/adapters/out/postgres/orderrepo"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/generated/servers"
	"consolidation/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := setupDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		DepotLatitude:  goDotEnvVariable("DEPOT_LATITUDE"),
		DepotLongitude: goDotEnvVariable("DEPOT_LONGITUDE"),
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

func setupDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.PackageDTO{}, &loadrepo.LoadDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	depot := parseDepot(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateConsolidateOrdersCommandHandler(),
		depot,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func parseDepot(configs cmd.Config) kernel.GeoPoint {
	latitude, err := strconv.ParseFloat(configs.DepotLatitude, 64)
	if err != nil {
		log.Fatalf("Invalid DEPOT_LATITUDE: %v", err)
	}

	longitude, err := strconv.ParseFloat(configs.DepotLongitude, 64)
	if err != nil {
		log.Fatalf("Invalid DEPOT_LONGITUDE: %v", err)
	}

	depot, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		log.Fatalf("Invalid depot coordinates: %v", err)
	}

	return depot
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateConsolidateOrdersCommandHandler(),
		app.CreateAddOrderToLoadCommandHandler(),
		app.CreateRemoveOrderFromLoadCommandHandler(),
		app.CreateGetActiveLoadsQueryHandler(),
		app.CreateCanAddOrderToLoadQueryHandler(),
		app.CreateDetectLoadConflictsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
