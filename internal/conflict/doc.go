// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package conflict orchestrates the resolution of a single conflict.
//
// A [ConflictHandler] is built from the conflict payload the server returned
// (its copy of the record), the client's rejected record, an optional base
// record and the configured object state and strategy. ExecuteStrategy runs
// detection, resolution and finalization exactly once:
//
//	Initialized ─▶ Executing ─┬─▶ Resolved
//	                          ├─▶ Unresolved
//	                          └─▶ Failed
//
// An unresolved conflict is a business outcome: ExecuteStrategy returns the
// client record unchanged and Conflicted reports true. Faults (missing state
// fields, strategy errors) end in Failed and are returned as errors.
package conflict
