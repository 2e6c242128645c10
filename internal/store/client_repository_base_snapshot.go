// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

// baseSnapshotRepository is the SQLite-backed implementation of
// [BaseSnapshotRepository]. Records are stored as JSON text in the
// base_snapshots table.
type baseSnapshotRepository struct {
	*DB
	now func() time.Time
}

// NewBaseSnapshotRepository returns a [BaseSnapshotRepository] on db.
func NewBaseSnapshotRepository(db *DB) BaseSnapshotRepository {
	return &baseSnapshotRepository{DB: db, now: time.Now}
}

func (r *baseSnapshotRepository) SaveBase(ctx context.Context, operationID, returnType string, base models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveBaseQuery(models.BaseSnapshot{
		OperationID: operationID,
		ReturnType:  returnType,
		Record:      base,
		CreatedAt:   r.now(),
	})
	if err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.SaveBase").
			Str("operation_id", operationID).
			Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.SaveBase").
			Str("operation_id", operationID).
			Msg("failed to save base snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *baseSnapshotRepository) GetBase(ctx context.Context, operationID string) (models.BaseSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBaseQuery(operationID)
	if err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.GetBase").
			Str("operation_id", operationID).
			Msg("failed to create query")
		return models.BaseSnapshot{}, err
	}

	var (
		snapshot models.BaseSnapshot
		payload  string
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.OperationID,
		&snapshot.ReturnType,
		&payload,
		&snapshot.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BaseSnapshot{}, ErrBaseNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.GetBase").
			Str("operation_id", operationID).
			Msg("failed to scan base snapshot row")
		return models.BaseSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(payload), &snapshot.Record); err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.GetBase").
			Str("operation_id", operationID).
			Msg("stored base snapshot is not valid JSON")
		return models.BaseSnapshot{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return snapshot, nil
}

func (r *baseSnapshotRepository) DeleteBase(ctx context.Context, operationIDs ...string) error {
	if len(operationIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBaseQuery(operationIDs...)
	if err != nil {
		log.Err(err).Str("func", "baseSnapshotRepository.DeleteBase").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.DeleteBase").
			Strs("operation_ids", operationIDs).
			Msg("failed to delete base snapshots")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *baseSnapshotRepository) PurgeBefore(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeBaseQuery(before)
	if err != nil {
		log.Err(err).Str("func", "baseSnapshotRepository.PurgeBefore").Msg("failed to create query")
		return 0, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "baseSnapshotRepository.PurgeBefore").
			Time("before", before).
			Msg("failed to purge base snapshots")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}
