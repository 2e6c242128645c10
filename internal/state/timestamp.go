// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

// DefaultTimestampField is the record field holding the last server write time.
const DefaultTimestampField = "updatedAt"

// TimestampState tracks object state with the time of the last server-side
// write. The client keeps the timestamp it last saw; a different timestamp
// on the server means somebody else wrote the record in the meantime.
type TimestampState struct {
	field string
}

var _ ObjectState = (*TimestampState)(nil)

// NewTimestampState returns a TimestampState comparing the given field.
// An empty field selects [DefaultTimestampField].
func NewTimestampState(field string) *TimestampState {
	if field == "" {
		field = DefaultTimestampField
	}

	return &TimestampState{field: field}
}

// HasConflict implements [ObjectState]. Records conflict iff their
// timestamps denote different instants.
func (s *TimestampState) HasConflict(client, server models.Record) (bool, error) {
	cv, err := requireField(client, s.field, sideClient)
	if err != nil {
		return false, err
	}
	sv, err := requireField(server, s.field, sideServer)
	if err != nil {
		return false, err
	}

	ct, err := asTime(cv)
	if err != nil {
		return false, fmt.Errorf("client %q: %w", s.field, err)
	}
	st, err := asTime(sv)
	if err != nil {
		return false, fmt.Errorf("server %q: %w", s.field, err)
	}

	return !ct.Equal(st), nil
}

// AssignServerState implements [ObjectState]. The server value is copied
// verbatim so the client keeps the server's representation.
func (s *TimestampState) AssignServerState(client, server models.Record) (models.Record, error) {
	sv, err := requireField(server, s.field, sideServer)
	if err != nil {
		return nil, fmt.Errorf("assign server timestamp: %w", err)
	}
	if _, err = asTime(sv); err != nil {
		return nil, fmt.Errorf("assign server timestamp: %w", err)
	}

	out := client.Clone()
	if out == nil {
		out = models.Record{}
	}
	out[s.field] = sv

	return out, nil
}

// StateFields implements [ObjectState].
func (s *TimestampState) StateFields() []string {
	return []string{s.field, IDField}
}
