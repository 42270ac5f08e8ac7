package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/fit-tracker/internal/adapter"
	"github.com/MKhiriev/fit-tracker/internal/client"
	"github.com/MKhiriev/fit-tracker/internal/config"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/internal/tui"
	"github.com/MKhiriev/fit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Local overrides for development; absence of the file is fine.
	_ = godotenv.Load()

	log := logger.NewClientLogger("fit-tracker-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	calorieAdapter, err := adapter.NewHTTPCalorieAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create calorie adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, authAdapter, calorieAdapter, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, localStorage.Preferences, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
