// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

type recordKey struct {
	returnType string
	id         string
}

// memoryRecordRepository keeps records in process memory. Records are
// cloned on the way in and out.
type memoryRecordRepository struct {
	mu      sync.RWMutex
	records map[recordKey]models.Record
}

// NewMemoryRecordRepository returns an empty in-memory [RecordRepository].
func NewMemoryRecordRepository() RecordRepository {
	return &memoryRecordRepository{records: make(map[recordKey]models.Record)}
}

func (m *memoryRecordRepository) Get(ctx context.Context, returnType, id string) (models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[recordKey{returnType, id}]
	if !ok {
		return nil, ErrRecordNotFound
	}

	return rec.Clone(), nil
}

func (m *memoryRecordRepository) Update(ctx context.Context, returnType, id string, fn UpdateFunc) (models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{returnType, id}
	current, found := m.records[key]

	next, err := fn(current.Clone(), found)
	if err != nil {
		return nil, err
	}

	m.records[key] = next.Clone()
	logger.FromContext(ctx).Debug().
		Str("func", "memoryRecordRepository.Update").
		Str("return_type", returnType).
		Str("id", id).
		Msg("record stored")

	return next.Clone(), nil
}
