// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-sync-conflicts/internal/config"
	"github.com/MKhiriev/go-sync-conflicts/internal/handler"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/metrics"
	"github.com/MKhiriev/go-sync-conflicts/internal/server"
	"github.com/MKhiriev/go-sync-conflicts/internal/service"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := buildInfo()
	printBuildInfo(build)

	log := logger.NewLogger("sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	serverMetrics, err := metrics.NewServerMetrics(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	services, err := service.NewServices(store.NewRepositories(), *cfg, serverMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(
		services,
		cfg.Server,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		build,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.AppBuildInfo{
		BuildVersion: buildVersion,
		BuildDate:    buildDate,
		BuildCommit:  buildCommit,
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion)
	fmt.Printf("Build date: %s\n", build.BuildDate)
	fmt.Printf("Build commit: %s\n", build.BuildCommit)
}
