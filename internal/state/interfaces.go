// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state provides the object state implementations used to detect
// divergence between a client record and the authoritative server record.
//
// An [ObjectState] declares which record fields it inspects ([ObjectState.StateFields]),
// compares client and server copies on those fields ([ObjectState.HasConflict])
// and, once a resolution was accepted, copies the server-owned bookkeeping
// fields onto the resolved record ([ObjectState.AssignServerState]).
//
// Implementations are stateless apart from their field configuration and
// are safe for concurrent use.
package state

import "github.com/MKhiriev/go-sync-conflicts/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/object_state_mock.go -package=mock

// ObjectState detects conflicts between two copies of a record and
// progresses the client copy to the server's state.
//
// The server-side state provider must use the same scheme.
type ObjectState interface {
	// HasConflict reports whether client and server diverged. It never
	// modifies its arguments. Records lacking a compared state field yield
	// an error wrapping [ErrMissingStateField].
	HasConflict(client, server models.Record) (bool, error)

	// AssignServerState returns a copy of client whose state fields were
	// taken over from server. Substantive client fields are left intact.
	AssignServerState(client, server models.Record) (models.Record, error)

	// StateFields lists the fields this state inspects, comparison field
	// first, so callers can request exactly those fields from the server.
	StateFields() []string
}
