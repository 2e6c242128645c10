// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

// ── TimestampState ───────────────────────────────────────────────────────────

func TestTimestampState_HasConflict(t *testing.T) {
	s := NewTimestampState("")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		client any
		server any
		want   bool
	}{
		{name: "same time value", client: at, server: at, want: false},
		{name: "string and time", client: at.Format(time.RFC3339Nano), server: at, want: false},
		{name: "millis and string", client: float64(at.UnixMilli()), server: at.Format(time.RFC3339), want: false},
		{name: "other zone same instant", client: at.In(time.FixedZone("X", 3600)), server: at, want: false},
		{name: "server later", client: at, server: at.Add(time.Second), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.HasConflict(
				models.Record{"id": 1, "updatedAt": tt.client},
				models.Record{"id": 1, "updatedAt": tt.server},
			)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestampState_InvalidValue(t *testing.T) {
	s := NewTimestampState("")

	_, err := s.HasConflict(models.Record{"updatedAt": "yesterday"}, models.Record{"updatedAt": "2026-01-01T00:00:00Z"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateValue)

	_, err = s.HasConflict(models.Record{"updatedAt": true}, models.Record{"updatedAt": "2026-01-01T00:00:00Z"})
	assert.ErrorIs(t, err, ErrInvalidStateValue)

	_, err = s.HasConflict(models.Record{}, models.Record{"updatedAt": "2026-01-01T00:00:00Z"})
	assert.ErrorIs(t, err, ErrMissingStateField)
}

func TestTimestampState_RoundTrip(t *testing.T) {
	s := NewTimestampState("")
	client := models.Record{"id": 1, "updatedAt": "2026-01-01T00:00:00Z", "title": "mine"}
	server := models.Record{"id": 1, "updatedAt": "2026-01-02T00:00:00Z", "title": "theirs"}

	got, err := s.AssignServerState(client, server)
	require.NoError(t, err)
	assert.Equal(t, "mine", got["title"])
	assert.Equal(t, "2026-01-02T00:00:00Z", got["updatedAt"])

	conflict, err := s.HasConflict(got, server)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, []string{"updatedAt", "id"}, s.StateFields())
}

// ── HashState ────────────────────────────────────────────────────────────────

func TestHashState_Digest(t *testing.T) {
	s := NewHashState("")

	a, err := s.Digest(models.Record{"id": 1, "hash": "x", "title": "t", "done": false})
	require.NoError(t, err)
	b, err := s.Digest(models.Record{"done": false, "title": "t", "id": 99, "hash": "y"})
	require.NoError(t, err)
	c, err := s.Digest(models.Record{"id": 1, "title": "t", "done": true})
	require.NoError(t, err)

	assert.Equal(t, a, b, "state fields and key order must not affect the digest")
	assert.NotEqual(t, a, c)
	assert.NotEmpty(t, a)
}

func TestHashState_DigestExcludesExtraFields(t *testing.T) {
	s := NewHashState("", "version", "updatedAt")

	a, err := s.Digest(models.Record{"title": "t", "version": 1, "updatedAt": "a"})
	require.NoError(t, err)
	b, err := s.Digest(models.Record{"title": "t", "version": 7, "updatedAt": "b"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHashState_DigestUnencodable(t *testing.T) {
	s := NewHashState("")

	_, err := s.Digest(models.Record{"ch": make(chan int)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateValue)
}

func TestHashState_ConflictAndRoundTrip(t *testing.T) {
	s := NewHashState("")
	client := models.Record{"id": 1, "hash": "aaa", "title": "mine"}
	server := models.Record{"id": 1, "hash": "bbb", "title": "theirs"}

	conflict, err := s.HasConflict(client, server)
	require.NoError(t, err)
	assert.True(t, conflict)

	got, err := s.AssignServerState(client, server)
	require.NoError(t, err)
	assert.Equal(t, models.Record{"id": 1, "hash": "bbb", "title": "mine"}, got)

	conflict, err = s.HasConflict(got, server)
	require.NoError(t, err)
	assert.False(t, conflict)

	_, err = s.HasConflict(models.Record{"id": 1}, server)
	assert.ErrorIs(t, err, ErrMissingStateField)
}

// ── VectorClockState ─────────────────────────────────────────────────────────

func TestVectorClockState_HasConflict(t *testing.T) {
	s := NewVectorClockState("")

	tests := []struct {
		name   string
		client any
		server any
		want   bool
	}{
		{
			name:   "identical",
			client: map[string]any{"server": float64(3)},
			server: map[string]any{"server": float64(3)},
			want:   false,
		},
		{
			name:   "client ahead with local write",
			client: map[string]any{"server": float64(3), "phone": float64(1)},
			server: map[string]any{"server": float64(3)},
			want:   false,
		},
		{
			name:   "server ahead",
			client: map[string]uint64{"server": 3},
			server: map[string]uint64{"server": 4},
			want:   true,
		},
		{
			name:   "concurrent",
			client: map[string]int{"server": 3, "phone": 1},
			server: map[string]int{"server": 4},
			want:   true,
		},
		{
			name:   "empty client clock against empty server clock",
			client: map[string]any{},
			server: map[string]any{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.HasConflict(models.Record{"clock": tt.client}, models.Record{"clock": tt.server})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVectorClockState_InvalidClock(t *testing.T) {
	s := NewVectorClockState("")

	_, err := s.HasConflict(models.Record{"clock": "3"}, models.Record{"clock": map[string]any{}})
	assert.ErrorIs(t, err, ErrInvalidStateValue)

	_, err = s.HasConflict(models.Record{"clock": map[string]any{"a": -1.0}}, models.Record{"clock": map[string]any{}})
	assert.ErrorIs(t, err, ErrInvalidStateValue)

	_, err = s.HasConflict(models.Record{"clock": map[string]any{}}, models.Record{})
	assert.ErrorIs(t, err, ErrMissingStateField)
}

func TestVectorClockState_AssignServerState_Merges(t *testing.T) {
	s := NewVectorClockState("")
	client := models.Record{"id": 1, "clock": map[string]any{"server": float64(3), "phone": float64(2)}, "title": "mine"}
	server := models.Record{"id": 1, "clock": map[string]any{"server": float64(5)}, "title": "theirs"}

	got, err := s.AssignServerState(client, server)
	require.NoError(t, err)

	assert.Equal(t, map[string]uint64{"server": 5, "phone": 2}, got["clock"])
	assert.Equal(t, "mine", got["title"])

	conflict, err := s.HasConflict(got, server)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestVectorClockState_AssignServerState_KeepsServerRepresentation(t *testing.T) {
	s := NewVectorClockState("")
	server := models.Record{"id": 1, "clock": map[string]any{"server": float64(5)}}

	got, err := s.AssignServerState(server.Clone(), server)
	require.NoError(t, err)
	assert.Equal(t, server, got)
}

func TestVectorClockState_Tick(t *testing.T) {
	s := NewVectorClockState("")
	rec := models.Record{"id": 1, "clock": map[string]any{"server": float64(2), "phone": float64(1)}}

	got, err := s.Tick(rec, "server")
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"server": 3, "phone": 1}, got["clock"])
	assert.Equal(t, map[string]any{"server": float64(2), "phone": float64(1)}, rec["clock"])

	conflict, err := s.HasConflict(rec, got)
	require.NoError(t, err)
	assert.True(t, conflict)

	fresh, err := s.Tick(models.Record{"id": 2}, "server")
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"server": 1}, fresh["clock"])

	_, err = s.Tick(models.Record{"clock": "x"}, "server")
	assert.ErrorIs(t, err, ErrInvalidStateValue)
}

// ── factory ──────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     any
	}{
		{name: "default", provider: "", want: &VersionedState{}},
		{name: "version", provider: "version", want: &VersionedState{}},
		{name: "timestamp", provider: "Timestamp", want: &TimestampState{}},
		{name: "hash", provider: "hash", want: &HashState{}},
		{name: "vector clock", provider: "vector_clock", want: &VectorClockState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.provider, "")
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}

	_, err := New("crdt", "")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

// No variant may report a conflict for records identical on the declared
// state fields.
func TestObjectStates_NoConflictOnIdenticalStateFields(t *testing.T) {
	records := map[string]models.Record{
		ProviderVersion:     {"id": 1, "version": 4},
		ProviderTimestamp:   {"id": 1, "updatedAt": "2026-01-01T00:00:00Z"},
		ProviderHash:        {"id": 1, "hash": "abc"},
		ProviderVectorClock: {"id": 1, "clock": map[string]any{"server": float64(2)}},
	}

	for provider, rec := range records {
		s, err := New(provider, "")
		require.NoError(t, err)

		client := rec.Clone()
		client["payload"] = "client"
		server := rec.Clone()
		server["payload"] = "server"

		conflict, err := s.HasConflict(client, server)
		require.NoError(t, err, provider)
		assert.False(t, conflict, provider)
	}
}
