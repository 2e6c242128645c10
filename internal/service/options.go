// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-sync-conflicts/internal/strategy"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

// ResolveOption adjusts a single resolution or submission.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	strategy      strategy.Strategy
	base          models.Record
	operationName string
}

// WithStrategy overrides the configured strategy for one call.
func WithStrategy(s strategy.Strategy) ResolveOption {
	return func(o *resolveOptions) {
		if s != nil {
			o.strategy = s
		}
	}
}

// WithBase supplies the record as it was before the local mutation.
func WithBase(base models.Record) ResolveOption {
	return func(o *resolveOptions) {
		if base != nil {
			o.base = base
		}
	}
}

// WithOperationName labels the conflict in listener events and logs.
func WithOperationName(name string) ResolveOption {
	return func(o *resolveOptions) {
		o.operationName = name
	}
}

func applyResolveOptions(opts []ResolveOption) resolveOptions {
	var o resolveOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
