// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/internal/adapter"
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
	"github.com/MKhiriev/go-sync-conflicts/internal/utils"
	"github.com/MKhiriev/go-sync-conflicts/internal/validators"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

type clientMutationService struct {
	adapter   adapter.MutationAdapter
	bases     store.BaseSnapshotRepository
	conflicts ConflictService
	provider  state.ObjectState
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientMutationService returns the client link between the transport
// and the conflict engine. provider must be the one conflicts were
// configured with.
func NewClientMutationService(
	mutationAdapter adapter.MutationAdapter,
	bases store.BaseSnapshotRepository,
	conflicts ConflictService,
	provider state.ObjectState,
	log *logger.Logger,
) ClientMutationService {
	if log == nil {
		log = logger.Nop()
	}

	return &clientMutationService{
		adapter:   mutationAdapter,
		bases:     bases,
		conflicts: conflicts,
		provider:  provider,
		validator: validators.NewMutationValidator(),
		logger:    log,
	}
}

func (s *clientMutationService) Submit(ctx context.Context, op models.Operation, opts ...ResolveOption) (models.Record, error) {
	if err := s.validator.Validate(ctx, op); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	// records without the compared state field are not tracked
	if field := s.compareField(); field == "" || !op.Variables.Has(field) {
		s.logger.Debug().Str("func", "clientMutationService.Submit").
			Str("operation", op.Name).
			Str("state_field", field).
			Msg("state field absent, submitting without conflict handling")
		return s.adapter.Mutate(ctx, op)
	}

	op.ID = OperationID(op)

	o := applyResolveOptions(opts)
	base := op.Base
	if o.base != nil {
		base = o.base
	}
	base, err := s.rememberBase(ctx, op, base)
	if err != nil {
		return nil, err
	}

	stored, mutateErr := s.adapter.Mutate(ctx, op)
	if mutateErr == nil {
		s.forgetBase(ctx, op.ID)
		return stored, nil
	}

	info, ok, err := s.conflictInfo(ctx, op, mutateErr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, mutateErr
	}
	if info.ClientState == nil {
		info.ClientState = op.Variables
	}
	if info.ReturnType == "" {
		info.ReturnType = op.ReturnType
	}

	resolveOpts := []ResolveOption{WithBase(base), WithOperationName(op.Name)}
	if o.strategy != nil {
		resolveOpts = append(resolveOpts, WithStrategy(o.strategy))
	}
	res, err := s.conflicts.Resolve(ctx, info, resolveOpts...)
	if err != nil {
		return nil, fmt.Errorf("resolve conflict: %w", err)
	}
	if res.Conflicted {
		return nil, errors.Join(ErrConflictUnresolved, mutateErr)
	}

	resolved := op
	resolved.Variables = res.Record
	stored, err = s.adapter.Mutate(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("resubmit resolved record: %w", err)
	}
	s.forgetBase(ctx, op.ID)

	return stored, nil
}

func (s *clientMutationService) compareField() string {
	if s.provider == nil {
		return ""
	}
	fields := s.provider.StateFields()
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// OperationID returns op.ID when set. Otherwise the id is derived from the
// return type, the operation name and the record id, so a retried operation
// finds the base snapshot saved by its earlier attempt. Records without an
// id get a fresh id.
func OperationID(op models.Operation) string {
	if op.ID != "" {
		return op.ID
	}

	ids := utils.NewUUIDGenerator()
	recordID, ok := op.Variables.Get(state.IDField)
	if !ok {
		return ids.Generate()
	}

	return ids.Derive(op.ReturnType, op.Name, fmt.Sprint(recordID))
}

// conflictInfo extracts the conflict from mutateErr. A conflict reported
// without the server copy is completed by fetching the record. ok is false
// when mutateErr is not a conflict.
func (s *clientMutationService) conflictInfo(ctx context.Context, op models.Operation, mutateErr error) (models.ConflictInfo, bool, error) {
	if info, ok := adapter.AsConflict(mutateErr); ok {
		return info, true, nil
	}
	if !errors.Is(mutateErr, adapter.ErrConflict) {
		return models.ConflictInfo{}, false, nil
	}

	recordID, ok := op.Variables.Get(state.IDField)
	if !ok {
		return models.ConflictInfo{}, false, nil
	}

	server, err := s.adapter.GetRecord(ctx, op.ReturnType, fmt.Sprint(recordID))
	if err != nil {
		s.logger.Err(err).Str("func", "clientMutationService.conflictInfo").
			Str("operation_id", op.ID).
			Msg("failed to fetch server record for conflict")
		return models.ConflictInfo{}, false, errors.Join(mutateErr, fmt.Errorf("fetch server record: %w", err))
	}

	return models.ConflictInfo{ServerState: server, ReturnType: op.ReturnType}, true, nil
}

// rememberBase persists base under the operation id. Without a base it
// looks for one saved by an earlier attempt of the same operation.
func (s *clientMutationService) rememberBase(ctx context.Context, op models.Operation, base models.Record) (models.Record, error) {
	if s.bases == nil {
		return base, nil
	}

	if base != nil {
		if err := s.bases.SaveBase(ctx, op.ID, op.ReturnType, base); err != nil {
			return nil, fmt.Errorf("save base snapshot: %w", err)
		}
		return base, nil
	}

	snapshot, err := s.bases.GetBase(ctx, op.ID)
	switch {
	case errors.Is(err, store.ErrBaseNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load base snapshot: %w", err)
	}

	return snapshot.Record, nil
}

func (s *clientMutationService) forgetBase(ctx context.Context, operationID string) {
	if s.bases == nil {
		return
	}
	if err := s.bases.DeleteBase(ctx, operationID); err != nil {
		s.logger.Err(err).Str("func", "clientMutationService.forgetBase").
			Str("operation_id", operationID).
			Msg("failed to delete base snapshot")
	}
}
