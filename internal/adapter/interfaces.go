// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the mutation server.
//
// The primary abstraction is [MutationAdapter], which decouples the service
// layer from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPMutationAdapter]).
//
// HTTP statuses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409). A 409 that carries a
// conflict payload is returned as a [*ConflictError] holding the server's
// copy of the record.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mutation_adapter_mock.go -package=mock

// MutationAdapter submits mutations to the server.
type MutationAdapter interface {
	// Mutate submits op and returns the record the server stored. A rejected
	// stale write yields an error wrapping [ErrConflict]; use [AsConflict]
	// to get the conflict payload.
	Mutate(ctx context.Context, op models.Operation) (models.Record, error)

	// GetRecord fetches the server's current copy of a record.
	GetRecord(ctx context.Context, returnType, id string) (models.Record, error)
}
