// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/internal/config"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
)

type Services struct {
	MutationService MutationService
}

func NewServices(repositories *store.Repositories, cfg config.ServerConfig, recorder MutationRecorder, logger *logger.Logger) (*Services, error) {
	provider, err := state.New(cfg.Conflict.Provider, cfg.Conflict.StateField)
	if err != nil {
		return nil, fmt.Errorf("build object state: %w", err)
	}

	mutations := NewMutationService(repositories.Records, provider, recorder, logger)

	return &Services{
		MutationService: NewMutationLoggingService(logger).Wrap(mutations),
	}, nil
}
