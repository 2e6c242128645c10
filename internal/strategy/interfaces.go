// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package strategy contains the conflict resolution strategies.
//
// A [Strategy] receives the conflicting client and server records (and the
// pre-mutation base when the caller kept one) and returns the record to
// resubmit. When no safe automatic resolution exists it returns an error
// wrapping [ErrUnresolved]; the conflict handler turns that into a terminal
// "conflicted" outcome instead of a failure. Any other error is a fault and
// is propagated to the caller untouched.
//
// Strategies must be pure functions of their input: the same conflict may be
// replayed for testing or logging.
package strategy

import "github.com/MKhiriev/go-sync-conflicts/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/strategy_mock.go -package=mock

// Strategy decides how a detected conflict is resolved.
type Strategy interface {
	// Resolve returns the resolved record, or an error wrapping
	// [ErrUnresolved] when the conflict must be left to the application.
	// Implementations must not modify the records in conflict.
	Resolve(conflict models.ConflictData) (models.Record, error)
}

// MergeFunc is a caller-supplied merge. It receives copies of the base
// (possibly nil), client and server records.
type MergeFunc func(base, client, server models.Record) (models.Record, error)
