package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/client"
	"github.com/MKhiriev/rate-keeper/internal/config"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/service"
	"github.com/MKhiriev/rate-keeper/internal/store"
	"github.com/MKhiriev/rate-keeper/internal/tui"
	"github.com/MKhiriev/rate-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("rate-keeper-client", cfg.App.LogFile)
	log.Info().Stringer("build", buildInfo).Msg("starting client")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages.TokenRepository, serverAdapter, log)
	ctrl := controller.New(services, log)
	ui := tui.New(ctrl, buildInfo, cfg.App.NoticeTTL, log)

	app, err := client.NewApp(services.HealthService, ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
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
