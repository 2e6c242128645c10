// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs maintenance jobs of the client runtime, such as
// purging base snapshots whose mutations were never acknowledged.
//
// Workers run sequentially in registration order before the client executes
// its command.
package workers

import "context"

// Worker is a single maintenance job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // one pass of maintenance work
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
