// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/store"
)

// Workers runs a fixed list of workers.
type Workers struct {
	workers []Worker
}

// New groups ws. Nil workers are skipped.
func New(ws ...Worker) *Workers {
	out := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			out = append(out, w)
		}
	}

	return &Workers{workers: out}
}

// Run executes every worker once. A failing worker does not stop the
// following ones; all errors are joined. Run stops early when ctx is done.
func (w *Workers) Run(ctx context.Context) error {
	var errs error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return errors.Join(errs, err)
		}
		errs = errors.Join(errs, worker.Run(ctx))
	}

	return errs
}

// SnapshotPurgeWorker removes base snapshots older than the retention
// period. A snapshot outlives its mutation only when the client crashed or
// gave up between submit and acknowledgement.
type SnapshotPurgeWorker struct {
	bases     store.BaseSnapshotRepository
	retention time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewSnapshotPurgeWorker returns a worker purging bases. A retention of zero
// or less disables purging.
func NewSnapshotPurgeWorker(bases store.BaseSnapshotRepository, retention time.Duration, log *logger.Logger) *SnapshotPurgeWorker {
	return &SnapshotPurgeWorker{
		bases:     bases,
		retention: retention,
		now:       time.Now,
		logger:    log,
	}
}

// Run implements [Worker].
func (w *SnapshotPurgeWorker) Run(ctx context.Context) error {
	if w.retention <= 0 {
		return nil
	}

	before := w.now().Add(-w.retention)
	n, err := w.bases.PurgeBefore(ctx, before)
	if err != nil {
		w.logger.Err(err).
			Str("func", "SnapshotPurgeWorker.Run").
			Time("before", before).
			Msg("failed to purge base snapshots")
		return fmt.Errorf("purge base snapshots: %w", err)
	}

	if n > 0 {
		w.logger.Info().
			Int64("purged", n).
			Time("before", before).
			Msg("purged stale base snapshots")
	}

	return nil
}
