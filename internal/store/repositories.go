// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Repositories groups the server-side repositories.
type Repositories struct {
	Records RecordRepository
}

// NewRepositories returns the in-memory server repositories.
func NewRepositories() *Repositories {
	return &Repositories{Records: NewMemoryRecordRepository()}
}
