// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

// DefaultClockField is the record field holding the vector clock.
const DefaultClockField = "clock"

// VectorClockState tracks object state with a per-replica vector clock
// ({"node-a": 3, "server": 7}). It suits peers that write the same record
// independently: the client conflicts with the server whenever the server
// clock holds an event the client has not observed.
type VectorClockState struct {
	field string
}

var _ ObjectState = (*VectorClockState)(nil)

// NewVectorClockState returns a VectorClockState reading the given field.
// An empty field selects [DefaultClockField].
func NewVectorClockState(field string) *VectorClockState {
	if field == "" {
		field = DefaultClockField
	}

	return &VectorClockState{field: field}
}

// HasConflict implements [ObjectState]. There is no conflict iff the client
// clock dominates or equals the server clock; a server clock that is ahead
// or concurrent is a conflict.
func (s *VectorClockState) HasConflict(client, server models.Record) (bool, error) {
	cc, err := s.clock(client, sideClient)
	if err != nil {
		return false, err
	}
	sc, err := s.clock(server, sideServer)
	if err != nil {
		return false, err
	}

	return !dominatesOrEquals(cc, sc), nil
}

// AssignServerState implements [ObjectState]. The resolved record receives
// the element-wise maximum of both clocks, so it has observed every event
// known to the server.
func (s *VectorClockState) AssignServerState(client, server models.Record) (models.Record, error) {
	sc, err := s.clock(server, sideServer)
	if err != nil {
		return nil, fmt.Errorf("assign server clock: %w", err)
	}

	out := client.Clone()
	if out == nil {
		out = models.Record{}
	}

	cc := map[string]uint64{}
	if raw, ok := out.Get(s.field); ok {
		if cc, err = asClock(raw); err != nil {
			return nil, fmt.Errorf("assign server clock: client %q: %w", s.field, err)
		}
	}

	merged := mergeClocks(cc, sc)
	if clocksEqual(merged, sc) {
		// keep the server's own representation
		out[s.field] = models.CloneValue(server[s.field])
		return out, nil
	}
	out[s.field] = merged

	return out, nil
}

// StateFields implements [ObjectState].
func (s *VectorClockState) StateFields() []string {
	return []string{s.field, IDField}
}

func (s *VectorClockState) clock(r models.Record, side string) (map[string]uint64, error) {
	raw, err := requireField(r, s.field, side)
	if err != nil {
		return nil, err
	}
	c, err := asClock(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", side, s.field, err)
	}

	return c, nil
}

// dominatesOrEquals reports whether a has observed every event in b.
func dominatesOrEquals(a, b map[string]uint64) bool {
	for node, n := range b {
		if a[node] < n {
			return false
		}
	}

	return true
}

func mergeClocks(a, b map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(a)+len(b))
	for node, n := range a {
		out[node] = n
	}
	for node, n := range b {
		if n > out[node] {
			out[node] = n
		}
	}

	return out
}

// clocksEqual treats missing entries as zero.
func clocksEqual(a, b map[string]uint64) bool {
	return dominatesOrEquals(a, b) && dominatesOrEquals(b, a)
}

// Tick returns a copy of r whose clock records one more event on node.
// A record without a clock starts a new one.
func (s *VectorClockState) Tick(r models.Record, node string) (models.Record, error) {
	out := r.Clone()
	if out == nil {
		out = models.Record{}
	}

	c := map[string]uint64{}
	if raw, ok := out.Get(s.field); ok {
		parsed, err := asClock(raw)
		if err != nil {
			return nil, fmt.Errorf("tick %q: %w", s.field, err)
		}
		c = mergeClocks(parsed, nil)
	}
	c[node]++
	out[s.field] = c

	return out, nil
}
