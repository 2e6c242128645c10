// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

// DefaultHashField is the record field holding the server content digest.
const DefaultHashField = "hash"

// HashState tracks object state with a content digest stamped by the
// server on every write. The client submits the digest of the server copy
// it started from; any other digest on the server means the content moved.
type HashState struct {
	field string

	// excluded lists fields left out of the digest: the state fields
	// themselves plus any server bookkeeping fields.
	excluded []string
}

var _ ObjectState = (*HashState)(nil)

// NewHashState returns a HashState comparing the given field. An empty
// field selects [DefaultHashField]. Additional fields listed in exclude are
// ignored when computing digests.
func NewHashState(field string, exclude ...string) *HashState {
	if field == "" {
		field = DefaultHashField
	}

	excluded := make([]string, 0, len(exclude)+2)
	excluded = append(excluded, field, IDField)
	excluded = append(excluded, exclude...)

	return &HashState{field: field, excluded: excluded}
}

// HasConflict implements [ObjectState]. Records conflict iff their stored
// digests differ.
func (s *HashState) HasConflict(client, server models.Record) (bool, error) {
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

// AssignServerState implements [ObjectState]. It copies the server digest
// onto a clone of client.
func (s *HashState) AssignServerState(client, server models.Record) (models.Record, error) {
	sv, err := requireField(server, s.field, sideServer)
	if err != nil {
		return nil, fmt.Errorf("assign server hash: %w", err)
	}

	out := client.Clone()
	if out == nil {
		out = models.Record{}
	}
	out[s.field] = sv

	return out, nil
}

// StateFields implements [ObjectState].
func (s *HashState) StateFields() []string {
	return []string{s.field, IDField}
}

// Digest computes the content digest of r: xxhash64 over the JSON encoding
// of r without the excluded fields, formatted as lowercase hex.
// encoding/json writes map keys sorted, which makes the encoding canonical.
func (s *HashState) Digest(r models.Record) (string, error) {
	payload, err := json.Marshal(r.Without(s.excluded...))
	if err != nil {
		return "", fmt.Errorf("%w: encode record for digest: %w", ErrInvalidStateValue, err)
	}

	return strconv.FormatUint(xxhash.Sum64(payload), 16), nil
}
