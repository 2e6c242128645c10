// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sync-conflicts/internal/adapter"
	"github.com/MKhiriev/go-sync-conflicts/internal/client"
	"github.com/MKhiriev/go-sync-conflicts/internal/config"
	"github.com/MKhiriev/go-sync-conflicts/internal/conflict"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/metrics"
	"github.com/MKhiriev/go-sync-conflicts/internal/service"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
	"github.com/MKhiriev/go-sync-conflicts/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sync-client", os.Stderr, zerolog.InfoLevel)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mutationAdapter, err := adapter.NewHTTPMutationAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create mutation adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	listeners := conflict.Listeners{conflict.NewLoggingListener(log)}
	var registry *prometheus.Registry
	if cfg.Metrics.TextfilePath != "" {
		registry = prometheus.NewRegistry()
		conflictMetrics, err := metrics.NewListener(registry)
		if err != nil {
			log.Fatal().Err(err).Msg("register conflict metrics")
		}
		listeners = append(listeners, conflictMetrics)
	}

	services, err := service.NewClientServices(localStorage.BaseSnapshots, mutationAdapter, *cfg, listeners, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ws := workers.New(workers.NewSnapshotPurgeWorker(localStorage.BaseSnapshots, cfg.Storage.SnapshotRetention, log))

	app, err := client.NewApp(services, ws, cfg.Args, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if registry != nil {
		if err = metrics.WriteTextfile(cfg.Metrics.TextfilePath, registry); err != nil {
			log.Warn().Err(err).Msg("export client metrics")
		}
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("client run error")
		localStorage.Close()
		os.Exit(1)
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
