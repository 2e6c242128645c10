// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

type MutationLoggingService struct {
	inner  MutationService
	logger *logger.Logger
}

func NewMutationLoggingService(log *logger.Logger) MutationServiceWrapper {
	return &MutationLoggingService{logger: log}
}

func (l *MutationLoggingService) Apply(ctx context.Context, req models.MutationRequest) (models.Record, error) {
	log := logger.FromContextOr(ctx, l.logger)

	stored, err := l.inner.Apply(ctx, req)
	switch {
	case errors.Is(err, ErrStaleRecord):
		log.Warn().Str("func", "MutationService.Apply").
			Str("operation", req.OperationName).
			Str("return_type", req.ReturnType).
			Msg("stale write rejected")
	case err != nil:
		log.Err(err).Str("func", "MutationService.Apply").
			Str("operation", req.OperationName).
			Str("return_type", req.ReturnType).
			Msg("mutation failed")
	default:
		log.Debug().Str("func", "MutationService.Apply").
			Str("operation", req.OperationName).
			Str("return_type", req.ReturnType).
			Str("id", recordID(stored)).
			Msg("mutation applied")
	}

	return stored, err
}

func (l *MutationLoggingService) GetRecord(ctx context.Context, returnType, id string) (models.Record, error) {
	rec, err := l.inner.GetRecord(ctx, returnType, id)
	if err != nil {
		l.logger.Err(err).Str("func", "MutationService.GetRecord").
			Str("return_type", returnType).
			Str("id", id).
			Msg("record lookup failed")
	}

	return rec, err
}

func (l *MutationLoggingService) Wrap(inner MutationService) MutationService {
	l.inner = inner
	return l
}
