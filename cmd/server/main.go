package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/handler"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/server"
	"github.com/MKhiriev/go-newsletter/internal/service"
	"github.com/MKhiriev/go-newsletter/internal/store"
	"github.com/MKhiriev/go-newsletter/internal/telemetry"
	"github.com/MKhiriev/go-newsletter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("newsletter-server", "info").Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Version = service.ResolveAppVersion(cfg.App.Version, buildInfo)

	log := logger.NewLogger("newsletter-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			log.Err(err).Msg("error shutting down telemetry")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
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

	log.Info().Stringer("http_address", srv.HTTPAddr()).Msg("newsletter server started")
	srv.RunServer()
}
