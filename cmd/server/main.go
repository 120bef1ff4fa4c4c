package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lost-and-found/internal/adapter"
	"github.com/MKhiriev/lost-and-found/internal/config"
	httphandler "github.com/MKhiriev/lost-and-found/internal/handler/http"
	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/server"
	"github.com/MKhiriev/lost-and-found/internal/service"
	"github.com/MKhiriev/lost-and-found/internal/store"
	"github.com/MKhiriev/lost-and-found/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lost-and-found-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	notifier := adapter.NewWebhookNotifier(adapter.WebhookNotifierConfig{
		WebhookURL: cfg.Notifier.ResetWebhookURL,
		Timeout:    cfg.Notifier.Timeout,
	}, log)

	services := service.NewServices(storages, notifier, cfg, log)
	router := httphandler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(storages, cfg.Workers, log).Run()

	srv.RunServer()
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
