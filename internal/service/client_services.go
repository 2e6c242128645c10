// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/internal/adapter"
	"github.com/MKhiriev/go-sync-conflicts/internal/config"
	"github.com/MKhiriev/go-sync-conflicts/internal/conflict"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
	"github.com/MKhiriev/go-sync-conflicts/internal/strategy"
)

type ClientServices struct {
	Provider        state.ObjectState
	ConflictService ConflictService
	MutationService ClientMutationService
}

// NewClientServices builds the client services from cfg. listener may be
// nil.
func NewClientServices(
	bases store.BaseSnapshotRepository,
	mutationAdapter adapter.MutationAdapter,
	cfg config.ClientConfig,
	listener conflict.Listener,
	logger *logger.Logger,
) (*ClientServices, error) {
	provider, err := state.New(cfg.Conflict.Provider, cfg.Conflict.StateField)
	if err != nil {
		return nil, fmt.Errorf("build object state: %w", err)
	}

	s, err := NewConflictStrategy(cfg.Conflict, provider.StateFields())
	if err != nil {
		return nil, err
	}

	conflicts, err := NewConflictService(ConflictConfig{
		Provider:    provider,
		Strategy:    s,
		Listener:    listener,
		Concurrency: cfg.Workers.Concurrency,
	}, logger)
	if err != nil {
		return nil, err
	}
	conflicts = NewConflictLoggingService(logger).Wrap(conflicts)

	return &ClientServices{
		Provider:        provider,
		ConflictService: conflicts,
		MutationService: NewClientMutationService(mutationAdapter, bases, conflicts, provider, logger),
	}, nil
}

// NewConflictStrategy builds the configured default strategy. Per-type
// overrides are dispatched by return type on top of it.
func NewConflictStrategy(cfg config.Conflict, stateFields []string) (strategy.Strategy, error) {
	fallback, err := strategy.New(cfg.Strategy, stateFields)
	if err != nil {
		return nil, fmt.Errorf("build strategy: %w", err)
	}
	if len(cfg.TypeStrategies) == 0 {
		return fallback, nil
	}

	opts := make([]strategy.ByTypeOption, 0, len(cfg.TypeStrategies))
	for returnType, name := range cfg.TypeStrategies {
		s, err := strategy.New(name, stateFields)
		if err != nil {
			return nil, fmt.Errorf("build strategy for %q: %w", returnType, err)
		}
		opts = append(opts, strategy.WithTypeStrategy(returnType, s))
	}

	return strategy.NewByType(fallback, opts...)
}
