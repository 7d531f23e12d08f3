package main

import (
	"context"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/client"
	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/internal/tui"
	"github.com/elibowlby/christmas-list-app/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("gift-tracker-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	localDB, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessions, err := store.NewSessionStore(ctx, localDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	services := service.NewClientServices(sessions, serverAdapter)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
