// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"github.com/MKhiriev/go-sync-conflicts/models"
)

var _ Strategy = (*Merge)(nil)

// Merge delegates resolution to a caller-supplied function. Errors returned
// by the function are passed through unchanged, so a function returning
// [Unresolved] ends the conflict as unresolved and anything else surfaces as
// a fault.
type Merge struct {
	fn MergeFunc
}

// NewMerge wraps fn into a [Strategy].
func NewMerge(fn MergeFunc) *Merge {
	return &Merge{fn: fn}
}

// Resolve implements [Strategy]. The merge function works on copies.
func (m *Merge) Resolve(conflict models.ConflictData) (models.Record, error) {
	if m.fn == nil {
		return nil, ErrEmptyResolution
	}

	merged, err := m.fn(conflict.Base.Clone(), conflict.Client.Clone(), conflict.Server.Clone())
	if err != nil {
		return nil, err
	}
	if merged == nil {
		return nil, ErrEmptyResolution
	}

	return merged, nil
}
