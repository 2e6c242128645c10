// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/service"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler
	build    models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler returns a Handler. metrics serves GET /metrics and may be nil.
func NewHandler(services *service.Services, metrics http.Handler, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		build:    build,
		logger:   logger,
	}
}
