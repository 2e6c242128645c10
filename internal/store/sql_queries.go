// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

const baseSnapshotsTable = "base_snapshots"

// SQLite understands "?" placeholders, squirrel's default.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveBaseQuery(snapshot models.BaseSnapshot) (string, []any, error) {
	payload, err := json.Marshal(snapshot.Record)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	query, args, err := sqlite.
		Insert(baseSnapshotsTable).
		Options("OR REPLACE").
		Columns("operation_id", "return_type", "record", "created_at").
		Values(snapshot.OperationID, snapshot.ReturnType, string(payload), snapshot.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetBaseQuery(operationID string) (string, []any, error) {
	query, args, err := sqlite.
		Select("operation_id", "return_type", "record", "created_at").
		From(baseSnapshotsTable).
		Where(sq.Eq{"operation_id": operationID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteBaseQuery(operationIDs ...string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(baseSnapshotsTable).
		Where(sq.Eq{"operation_id": operationIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildPurgeBaseQuery(before time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Delete(baseSnapshotsTable).
		Where(sq.Lt{"created_at": before.UTC()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
