package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/crypto"
	"github.com/MKhiriev/campus-auth/internal/handler"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/server"
	"github.com/MKhiriev/campus-auth/internal/service"
	"github.com/MKhiriev/campus-auth/internal/store"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("campus-auth-server").Fatal().Err(err).Msg("error getting configs")
	}

	level := zerolog.InfoLevel
	if cfg.App.Development {
		level = zerolog.DebugLevel
	}
	log := logger.NewLogger("campus-auth-server", logger.WithLevel(level))

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	hasher := crypto.NewPasswordHasher(cfg.App.Argon2)

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services, err := service.NewServices(storages, hasher, cfg.App, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
