package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/events"
	"github.com/MKhiriev/go-health-keeper/internal/handler"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/seed"
	"github.com/MKhiriev/go-health-keeper/internal/server"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("health-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	seeder := seed.NewSeeder(cfg.Seed, storages.MeasurementRepository, utils.NewUUIDGenerator(), log)
	if err = seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error seeding measurements")
	}

	// The publisher subscribes to the store before the first request can
	// arrive, so no recorded measurement is missed.
	var publisher *events.MeasurementPublisher
	if cfg.Broker.URL != "" {
		publisher = events.NewMeasurementPublisher(cfg.Broker, storages.MeasurementRepository, log)
		workers.NewWorkers(publisher).Run()
	}

	services, err := service.NewServices(*storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if publisher != nil {
		publisher.Stop()
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
