// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sync-conflicts/internal/conflict"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/strategy"
	"github.com/MKhiriev/go-sync-conflicts/internal/validators"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

// DefaultConcurrency bounds ResolveAll when ConflictConfig leaves it unset.
const DefaultConcurrency = 4

// ConflictConfig holds the collaborators of a ConflictService.
type ConflictConfig struct {
	// Provider detects conflicts. Required.
	Provider state.ObjectState
	// Strategy is the default strategy; client wins when nil.
	Strategy strategy.Strategy
	// Listener receives an event per detected conflict. Optional.
	Listener conflict.Listener
	// Concurrency caps ResolveAll.
	Concurrency int
}

type conflictService struct {
	provider    state.ObjectState
	strategy    strategy.Strategy
	listener    conflict.Listener
	concurrency int
	validator   validators.Validator
	logger      *logger.Logger
}

func NewConflictService(cfg ConflictConfig, log *logger.Logger) (ConflictService, error) {
	if cfg.Provider == nil {
		return nil, ErrNoConflictProvider
	}
	if cfg.Strategy == nil {
		cfg.Strategy = strategy.NewClientWins()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &conflictService{
		provider:    cfg.Provider,
		strategy:    cfg.Strategy,
		listener:    cfg.Listener,
		concurrency: cfg.Concurrency,
		validator:   validators.NewMutationValidator(),
		logger:      log,
	}, nil
}

func (c *conflictService) Resolve(ctx context.Context, info models.ConflictInfo, opts ...ResolveOption) (models.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return models.Resolution{}, err
	}

	if err := c.validator.Validate(ctx, info); err != nil {
		return models.Resolution{}, fmt.Errorf("%w: %w", ErrInvalidConflict, err)
	}

	o := applyResolveOptions(opts)
	s := c.strategy
	if o.strategy != nil {
		s = o.strategy
	}

	handler, err := conflict.NewConflictHandler(conflict.Options{
		Base:          o.base,
		Client:        info.ClientState,
		Server:        info.ServerState,
		ReturnType:    info.ReturnType,
		OperationName: o.operationName,
		ObjectState:   c.provider,
		Strategy:      s,
		Listener:      c.listener,
		Logger:        c.logger,
	})
	if err != nil {
		return models.Resolution{}, fmt.Errorf("%w: %w", ErrInvalidConflict, err)
	}

	record, err := handler.ExecuteStrategy()
	if err != nil {
		return models.Resolution{}, err
	}

	return models.Resolution{Record: record, Conflicted: handler.Conflicted()}, nil
}

func (c *conflictService) ResolveAll(ctx context.Context, infos []models.ConflictInfo, opts ...ResolveOption) ([]models.Resolution, error) {
	results := make([]models.Resolution, len(infos))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range infos {
		g.Go(func() error {
			res, err := c.Resolve(gCtx, infos[i], opts...)
			if err != nil {
				return fmt.Errorf("conflict %d (%s): %w", i, infos[i].ReturnType, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
