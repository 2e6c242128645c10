// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UpdateFunc computes the new version of a record from the stored one.
// found is false when no record is stored yet. Returning an error aborts the
// update and leaves the stored record untouched.
type UpdateFunc func(current models.Record, found bool) (models.Record, error)

// RecordRepository stores the server's authoritative records by return type
// and id.
type RecordRepository interface {
	Get(ctx context.Context, returnType, id string) (models.Record, error)
	// Update runs fn and stores its result atomically with respect to other
	// updates of the same repository.
	Update(ctx context.Context, returnType, id string, fn UpdateFunc) (models.Record, error)
}
