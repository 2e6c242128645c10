// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

func TestMemoryRecordRepository_GetUpdate(t *testing.T) {
	ctx := testContext()
	repo := NewMemoryRecordRepository()

	_, err := repo.Get(ctx, "Task", "1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	stored, err := repo.Update(ctx, "Task", "1", func(current models.Record, found bool) (models.Record, error) {
		assert.False(t, found)
		assert.Nil(t, current)
		return models.Record{"id": "1", "version": 1}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.Record{"id": "1", "version": 1}, stored)

	// returned records are copies
	stored["version"] = 100
	got, err := repo.Get(ctx, "Task", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, got["version"])

	_, err = repo.Get(ctx, "Note", "1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryRecordRepository_UpdateError(t *testing.T) {
	ctx := testContext()
	repo := NewMemoryRecordRepository()
	errStale := errors.New("stale")

	_, err := repo.Update(ctx, "Task", "1", func(models.Record, bool) (models.Record, error) {
		return models.Record{"id": "1", "version": 1}, nil
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "Task", "1", func(current models.Record, found bool) (models.Record, error) {
		assert.True(t, found)
		current["version"] = 2
		return nil, errStale
	})
	assert.ErrorIs(t, err, errStale)

	got, err := repo.Get(ctx, "Task", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, got["version"])
}

func TestMemoryRecordRepository_ConcurrentUpdates(t *testing.T) {
	ctx := testContext()
	repo := NewMemoryRecordRepository()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, "Counter", "c", func(current models.Record, found bool) (models.Record, error) {
				if !found {
					return models.Record{"n": 1}, nil
				}
				current["n"] = current["n"].(int) + 1
				return current, nil
			})
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "Counter", "c")
	require.NoError(t, err)
	assert.Equal(t, 50, got["n"])
}

func TestMemoryRecordRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRecordRepository()
	_, err := repo.Get(ctx, "Task", "1")
	assert.ErrorIs(t, err, context.Canceled)
}
