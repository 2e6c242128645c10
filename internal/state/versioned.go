// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

const (
	// DefaultVersionField is the record field holding the version counter.
	DefaultVersionField = "version"

	// IDField is the record identity field reported by every state.
	IDField = "id"
)

// VersionedState tracks object state with a version counter assigned by
// the server on every write. It requires the entity schema to expose the
// version field, for example:
//
//	type User {
//	  id: ID!
//	  version: Int
//	}
type VersionedState struct {
	field string
}

var _ ObjectState = (*VersionedState)(nil)

// NewVersionedState returns a VersionedState comparing the given field.
// An empty field selects [DefaultVersionField].
func NewVersionedState(field string) *VersionedState {
	if field == "" {
		field = DefaultVersionField
	}

	return &VersionedState{field: field}
}

// HasConflict implements [ObjectState]. Records conflict iff their versions
// differ. A missing version on either side is an error.
func (s *VersionedState) HasConflict(client, server models.Record) (bool, error) {
	cv, err := requireField(client, s.field, sideClient)
	if err != nil {
		return false, err
	}
	sv, err := requireField(server, s.field, sideServer)
	if err != nil {
		return false, err
	}

	return !valuesEqual(cv, sv), nil
}

// AssignServerState implements [ObjectState]. It copies the server version
// onto a clone of client.
func (s *VersionedState) AssignServerState(client, server models.Record) (models.Record, error) {
	sv, err := requireField(server, s.field, sideServer)
	if err != nil {
		return nil, fmt.Errorf("assign server version: %w", err)
	}

	out := client.Clone()
	if out == nil {
		out = models.Record{}
	}
	out[s.field] = sv

	return out, nil
}

// StateFields implements [ObjectState].
func (s *VersionedState) StateFields() []string {
	return []string{s.field, IDField}
}
