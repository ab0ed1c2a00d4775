package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/client"
	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/service"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-chat-client", logger.Options{
		FilePath: cfg.Log.File,
		Level:    cfg.Log.Level,
	})

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.Component("adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	link := realtime.NewConnection(
		realtime.NewWebsocketDialer(cfg.Adapter.RealtimeAddress, cfg.Realtime.HandshakeTimeout),
		realtime.Options{BackoffBase: cfg.Realtime.BackoffBase, BackoffMax: cfg.Realtime.BackoffMax},
		log.Component("realtime"),
	)

	printer := client.NewPrinter(os.Stdout, log.Component("notices"))
	services := service.NewClientServices(localStorage, serverAdapter, link, printer, cfg.Workers, log)

	app, err := client.NewApp(services, os.Stdin, printer, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
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
