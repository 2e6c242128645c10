// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service wires the conflict engine into the client and server
// flows.
//
// [ConflictService] turns a conflict reported by the server into a
// [models.Resolution]. [ClientMutationService] submits mutations and
// resolves conflicts on the way. [MutationService] is the reference
// server side that detects stale writes.
package service

import (
	"context"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

// ConflictService resolves conflicts with the configured object state and
// strategy.
type ConflictService interface {
	// Resolve runs a fresh conflict handler over info.
	Resolve(ctx context.Context, info models.ConflictInfo, opts ...ResolveOption) (models.Resolution, error)
	// ResolveAll resolves every conflict in infos concurrently. Results keep
	// the order of infos. The first fault cancels the remaining work.
	ResolveAll(ctx context.Context, infos []models.ConflictInfo, opts ...ResolveOption) ([]models.Resolution, error)
}

// ClientMutationService submits mutations to the server.
type ClientMutationService interface {
	// Submit sends op and returns the record stored by the server. A
	// conflict reported by the server is resolved and the resolved record is
	// resubmitted once.
	Submit(ctx context.Context, op models.Operation, opts ...ResolveOption) (models.Record, error)
}

// MutationService applies mutations on the reference server.
type MutationService interface {
	Apply(ctx context.Context, req models.MutationRequest) (models.Record, error)
	GetRecord(ctx context.Context, returnType, id string) (models.Record, error)
}

// ConflictServiceWrapper defines middleware composition for ConflictService.
type ConflictServiceWrapper interface {
	Wrap(ConflictService) ConflictService
}

// MutationServiceWrapper defines middleware composition for MutationService.
// Implementations add behavior such as logging or validating.
type MutationServiceWrapper interface {
	Wrap(MutationService) MutationService
}
