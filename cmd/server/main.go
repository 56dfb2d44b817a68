package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/leads-api/internal/config"
	"github.com/MKhiriev/leads-api/internal/handler"
	"github.com/MKhiriev/leads-api/internal/logger"
	"github.com/MKhiriev/leads-api/internal/server"
	"github.com/MKhiriev/leads-api/internal/service"
	"github.com/MKhiriev/leads-api/internal/store"
	"github.com/MKhiriev/leads-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("leads-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetDebug(bool(cfg.App.Debug))

	log.Debug().Object("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	services := service.NewServices(store.NewStorages(db, log), log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, server.WithLifespan(server.Lifespan{
		OnStartup: db.Init,
		OnShutdown: func(context.Context) error {
			return db.Close()
		},
	}))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
