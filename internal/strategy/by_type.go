// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

var _ Strategy = (*ByType)(nil)

// ByType dispatches a conflict to the strategy registered for its return
// type and falls back to a default strategy for every other type.
type ByType struct {
	strategies map[string]Strategy
	fallback   Strategy
}

// ByTypeOption configures a [ByType] dispatcher.
type ByTypeOption func(*ByType)

// WithTypeStrategy registers s for conflicts whose ReturnType is returnType.
// A later registration for the same type replaces the earlier one.
func WithTypeStrategy(returnType string, s Strategy) ByTypeOption {
	return func(b *ByType) {
		b.strategies[returnType] = s
	}
}

// NewByType builds a dispatcher. fallback is required; registrations with a
// nil strategy are rejected.
func NewByType(fallback Strategy, opts ...ByTypeOption) (*ByType, error) {
	if fallback == nil {
		return nil, ErrNoFallback
	}

	b := &ByType{strategies: make(map[string]Strategy), fallback: fallback}
	for _, opt := range opts {
		opt(b)
	}

	for returnType, s := range b.strategies {
		if s == nil {
			return nil, fmt.Errorf("nil strategy registered for type %q", returnType)
		}
	}

	return b, nil
}

// Resolve implements [Strategy].
func (b *ByType) Resolve(conflict models.ConflictData) (models.Record, error) {
	if s, ok := b.strategies[conflict.ReturnType]; ok {
		return s.Resolve(conflict)
	}

	return b.fallback.Resolve(conflict)
}
