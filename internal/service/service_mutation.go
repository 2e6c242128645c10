// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/metrics"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
	"github.com/MKhiriev/go-sync-conflicts/internal/utils"
	"github.com/MKhiriev/go-sync-conflicts/internal/validators"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

// ServerNode is the vector clock entry the server advances on every write.
const ServerNode = "server"

// MutationRecorder receives the outcome of every applied mutation.
type MutationRecorder interface {
	MutationHandled(returnType, outcome string)
}

// stampFields names the bookkeeping fields the server refreshes on write.
type stampFields struct {
	version   string
	updatedAt string
	hash      string
	clock     string
}

type mutationService struct {
	records   store.RecordRepository
	provider  state.ObjectState
	recorder  MutationRecorder
	validator validators.Validator

	fields stampFields
	hasher *state.HashState
	clock  *state.VectorClockState
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMutationService returns the reference server mutation service.
// Stale writes are detected with provider; every write refreshes the
// version, updatedAt, hash and clock fields so clients of any provider can
// talk to the same server. recorder may be nil.
func NewMutationService(records store.RecordRepository, provider state.ObjectState, recorder MutationRecorder, log *logger.Logger) MutationService {
	if log == nil {
		log = logger.Nop()
	}

	fields := stampFields{
		version:   state.DefaultVersionField,
		updatedAt: state.DefaultTimestampField,
		hash:      state.DefaultHashField,
		clock:     state.DefaultClockField,
	}
	compared := provider.StateFields()[0]
	switch provider.(type) {
	case *state.VersionedState:
		fields.version = compared
	case *state.TimestampState:
		fields.updatedAt = compared
	case *state.HashState:
		fields.hash = compared
	case *state.VectorClockState:
		fields.clock = compared
	}

	return &mutationService{
		records:   records,
		provider:  provider,
		recorder:  recorder,
		validator: validators.NewMutationValidator(),
		fields:    fields,
		hasher:    state.NewHashState(fields.hash, fields.version, fields.updatedAt, fields.clock),
		clock:     state.NewVectorClockState(fields.clock),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    log,
	}
}

func (s *mutationService) Apply(ctx context.Context, req models.MutationRequest) (models.Record, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	incoming := req.Variables.Clone()
	id := recordID(incoming)
	if id == "" {
		id = s.ids.Generate()
		incoming[state.IDField] = id
	}

	stored, err := s.records.Update(ctx, req.ReturnType, id, func(current models.Record, found bool) (models.Record, error) {
		if found && incoming.Has(s.provider.StateFields()[0]) {
			stale, err := s.provider.HasConflict(incoming, current)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
			}
			if stale {
				return nil, &StaleRecordError{Info: models.ConflictInfo{
					ServerState: current,
					ClientState: incoming,
					ReturnType:  req.ReturnType,
				}}
			}
		}

		return s.stamp(incoming, current, found)
	})
	s.record(req.ReturnType, err)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (s *mutationService) GetRecord(ctx context.Context, returnType, id string) (models.Record, error) {
	return s.records.Get(ctx, returnType, id)
}

// stamp refreshes the server-owned fields of rec. current is the stored
// record, if any.
func (s *mutationService) stamp(rec, current models.Record, found bool) (models.Record, error) {
	out := rec.Clone()

	var err error
	if found && current.Has(s.fields.clock) {
		if out, err = s.clock.AssignServerState(out, current); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
		}
	}
	if out, err = s.clock.Tick(out, ServerNode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	out[s.fields.version] = nextVersion(current[s.fields.version])
	out[s.fields.updatedAt] = s.now().UTC().Format(time.RFC3339Nano)

	digest, err := s.hasher.Digest(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	out[s.fields.hash] = digest

	return out, nil
}

func (s *mutationService) record(returnType string, err error) {
	if s.recorder == nil {
		return
	}

	outcome := metrics.OutcomeApplied
	switch {
	case errors.Is(err, ErrStaleRecord):
		outcome = metrics.OutcomeConflict
	case err != nil:
		outcome = metrics.OutcomeRejected
	}
	s.recorder.MutationHandled(returnType, outcome)
}

func recordID(r models.Record) string {
	v, ok := r.Get(state.IDField)
	if !ok {
		return ""
	}
	if id, ok := v.(string); ok {
		return id
	}

	return fmt.Sprint(v)
}

// nextVersion increments a numeric version counter. A missing or
// non-numeric counter restarts at 1.
func nextVersion(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n) + 1
	case int64:
		return n + 1
	case float64:
		return int64(n) + 1
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i + 1
		}
	}

	return 1
}
