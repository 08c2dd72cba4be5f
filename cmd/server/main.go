package main

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/handler"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/server"
	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/internal/workers"
	"github.com/MKhiriev/go-tube/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// drainTimeout bounds how long queued workflow runs may finish on shutdown.
const drainTimeout = time.Minute

func main() {
	buildInfo := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}

	log := logger.NewLogger("go-tube-server")
	log.Info().Stringer("build", buildInfo).Msg("starting go-tube server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Str("public_url", cfg.Server.PublicURL).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	adapters, err := adapter.NewAdapters(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}
	defer func() {
		if err := adapters.Close(); err != nil {
			log.Err(err).Msg("error closing adapters")
		}
	}()

	services, err := service.NewServices(storages, adapters, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if services.Dispatcher != nil {
		background := workers.NewWorkers(services.Dispatcher)
		background.Run()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			defer cancel()
			if err := background.Stop(ctx); err != nil {
				log.Err(err).Msg("error draining workflow runs")
			}
		}()
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
