// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// BaseSnapshotRepository persists the pre-mutation copies of records the
// client submitted, keyed by operation id.
type BaseSnapshotRepository interface {
	// SaveBase stores or replaces the snapshot for operationID.
	SaveBase(ctx context.Context, operationID, returnType string, base models.Record) error
	// GetBase returns [ErrBaseNotFound] when nothing is stored for operationID.
	GetBase(ctx context.Context, operationID string) (models.BaseSnapshot, error)
	DeleteBase(ctx context.Context, operationIDs ...string) error
	// PurgeBefore removes snapshots older than before and reports how many
	// were removed.
	PurgeBefore(ctx context.Context, before time.Time) (int64, error)
}
