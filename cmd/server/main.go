package main

import (
	"context"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/config"
	handlerHTTP "github.com/elibowlby/christmas-list-app/internal/handler/http"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/server"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/internal/workers"
	"github.com/elibowlby/christmas-list-app/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gift-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	mailer := adapter.NewSendGridMailer(cfg.Mail, log)
	services := service.NewServices(storages, mailer, *cfg, log)

	handler := handlerHTTP.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundJobs := workers.NewWorkers(services, cfg.Workers, log)
	backgroundJobs.Start(ctx)
	defer backgroundJobs.Stop()

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
