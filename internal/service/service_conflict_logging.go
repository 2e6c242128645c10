// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

type ConflictLoggingService struct {
	inner  ConflictService
	logger *logger.Logger
}

func NewConflictLoggingService(log *logger.Logger) ConflictServiceWrapper {
	return &ConflictLoggingService{logger: log}
}

func (l *ConflictLoggingService) Resolve(ctx context.Context, info models.ConflictInfo, opts ...ResolveOption) (models.Resolution, error) {
	res, err := l.inner.Resolve(ctx, info, opts...)
	if err != nil {
		l.logger.Err(err).Str("func", "ConflictService.Resolve").Str("return_type", info.ReturnType).Msg("conflict resolution failed")
		return res, err
	}

	l.logger.Debug().Str("func", "ConflictService.Resolve").
		Str("return_type", info.ReturnType).
		Bool("conflicted", res.Conflicted).
		Msg("conflict resolved")

	return res, nil
}

func (l *ConflictLoggingService) ResolveAll(ctx context.Context, infos []models.ConflictInfo, opts ...ResolveOption) ([]models.Resolution, error) {
	res, err := l.inner.ResolveAll(ctx, infos, opts...)
	if err != nil {
		l.logger.Err(err).Str("func", "ConflictService.ResolveAll").Int("count", len(infos)).Msg("batch resolution failed")
		return nil, err
	}

	conflicted := 0
	for _, r := range res {
		if r.Conflicted {
			conflicted++
		}
	}
	l.logger.Info().Str("func", "ConflictService.ResolveAll").
		Int("count", len(infos)).
		Int("conflicted", conflicted).
		Msg("batch resolved")

	return res, nil
}

func (l *ConflictLoggingService) Wrap(inner ConflictService) ConflictService {
	l.inner = inner
	return l
}
