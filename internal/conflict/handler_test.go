// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-conflicts/internal/mock"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/strategy"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

func alice() models.Record { return models.Record{"id": 1, "version": 2, "name": "Alice"} }
func bob() models.Record   { return models.Record{"id": 1, "version": 3, "name": "Bob"} }

func newHandler(t *testing.T, opts Options) *ConflictHandler {
	t.Helper()
	if opts.Client == nil {
		opts.Client = alice()
	}
	if opts.Server == nil {
		opts.Server = bob()
	}
	if opts.ObjectState == nil {
		opts.ObjectState = state.NewVersionedState("")
	}

	h, err := NewConflictHandler(opts)
	require.NoError(t, err)
	require.Equal(t, StateInitialized, h.State())

	return h
}

// ── scenarios ────────────────────────────────────────────────────────────────

func TestConflictHandler_ClientWins(t *testing.T) {
	h := newHandler(t, Options{Strategy: strategy.NewClientWins()})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)

	assert.Equal(t, models.Record{"id": 1, "version": 3, "name": "Alice"}, got)
	assert.False(t, h.Conflicted())
	assert.Equal(t, StateResolved, h.State())
}

func TestConflictHandler_DefaultStrategyIsClientWins(t *testing.T) {
	h := newHandler(t, Options{})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)
	assert.Equal(t, models.Record{"id": 1, "version": 3, "name": "Alice"}, got)
}

func TestConflictHandler_ServerWins(t *testing.T) {
	h := newHandler(t, Options{Strategy: strategy.NewServerWins()})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)

	assert.Equal(t, models.Record{"id": 1, "version": 3, "name": "Bob"}, got)
	assert.False(t, h.Conflicted())
}

func TestConflictHandler_MergeDeclines(t *testing.T) {
	sameName := strategy.NewMerge(func(_, client, server models.Record) (models.Record, error) {
		if client["name"] != server["name"] {
			return nil, strategy.Unresolved("names differ")
		}
		return client, nil
	})
	h := newHandler(t, Options{Strategy: sameName})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)

	assert.True(t, h.Conflicted())
	assert.Equal(t, StateUnresolved, h.State())
	assert.Equal(t, alice(), got)
}

// ── detection ────────────────────────────────────────────────────────────────

func TestConflictHandler_NoConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStrategy(ctrl)
	l := mock.NewMockListener(ctrl)
	// neither may be called
	s.EXPECT().Resolve(gomock.Any()).Times(0)
	l.EXPECT().ConflictOccurred(gomock.Any()).Times(0)

	client := models.Record{"id": 1, "version": 3, "name": "Alice"}
	h := newHandler(t, Options{Client: client, Strategy: s, Listener: l})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)

	assert.Equal(t, client, got)
	assert.False(t, h.Conflicted())
	assert.Equal(t, StateResolved, h.State())
}

func TestConflictHandler_DetectionFault(t *testing.T) {
	h := newHandler(t, Options{Client: models.Record{"id": 1, "name": "Alice"}})

	got, err := h.ExecuteStrategy()
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrMissingStateField)
	assert.Nil(t, got)
	assert.Equal(t, StateFailed, h.State())
	assert.True(t, h.Conflicted())
}

// ── faults ───────────────────────────────────────────────────────────────────

func TestConflictHandler_StrategyFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStrategy(ctrl)
	l := mock.NewMockListener(ctrl)

	errBoom := errors.New("boom")
	s.EXPECT().Resolve(gomock.Any()).Return(nil, errBoom)
	l.EXPECT().ConflictOccurred(gomock.Any()).Times(0)

	h := newHandler(t, Options{Strategy: s, Listener: l})

	got, err := h.ExecuteStrategy()
	assert.Same(t, errBoom, err)
	assert.Nil(t, got)
	assert.Equal(t, StateFailed, h.State())
	assert.True(t, h.Conflicted())
}

func TestConflictHandler_EmptyResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStrategy(ctrl)
	s.EXPECT().Resolve(gomock.Any()).Return(nil, nil)

	h := newHandler(t, Options{Strategy: s})

	_, err := h.ExecuteStrategy()
	assert.ErrorIs(t, err, strategy.ErrEmptyResolution)
	assert.Equal(t, StateFailed, h.State())
}

func TestConflictHandler_AssignFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	objState := mock.NewMockObjectState(ctrl)

	errAssign := errors.New("no version")
	objState.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(true, nil)
	objState.EXPECT().AssignServerState(gomock.Any(), gomock.Any()).Return(nil, errAssign)

	h := newHandler(t, Options{ObjectState: objState})

	_, err := h.ExecuteStrategy()
	assert.ErrorIs(t, err, errAssign)
	assert.Equal(t, StateFailed, h.State())
}

// ── strategy input ───────────────────────────────────────────────────────────

func TestConflictHandler_PassesConflictData(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStrategy(ctrl)

	base := models.Record{"id": 1, "version": 2, "name": "Al"}
	s.EXPECT().Resolve(models.ConflictData{
		Base:          base,
		Client:        alice(),
		Server:        bob(),
		ReturnType:    "User",
		OperationName: "updateUser",
	}).Return(alice(), nil)

	h := newHandler(t, Options{Base: base, Strategy: s, ReturnType: "User", OperationName: "updateUser"})

	_, err := h.ExecuteStrategy()
	require.NoError(t, err)
}

// ── listener ─────────────────────────────────────────────────────────────────

func TestConflictHandler_ListenerResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mock.NewMockListener(ctrl)

	l.EXPECT().ConflictOccurred(models.ConflictEvent{
		OperationName: "updateUser",
		ReturnType:    "User",
		Client:        alice(),
		Server:        bob(),
		Resolved:      models.Record{"id": 1, "version": 3, "name": "Alice"},
	})

	h := newHandler(t, Options{Listener: l, ReturnType: "User", OperationName: "updateUser"})

	_, err := h.ExecuteStrategy()
	require.NoError(t, err)
}

func TestConflictHandler_ListenerUnresolved(t *testing.T) {
	var got []models.ConflictEvent
	l := ListenerFunc(func(e models.ConflictEvent) { got = append(got, e) })

	h := newHandler(t, Options{Strategy: strategy.NewManual(""), Listener: l})

	_, err := h.ExecuteStrategy()
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.True(t, got[0].Conflicted)
	assert.Nil(t, got[0].Resolved)
}

func TestConflictHandler_ListenerCannotChangeOutcome(t *testing.T) {
	l := ListenerFunc(func(e models.ConflictEvent) {
		e.Resolved["name"] = "Mallory"
		e.Client["name"] = "Mallory"
		e.Server["name"] = "Mallory"
	})

	h := newHandler(t, Options{Listener: l})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)
	assert.Equal(t, "Alice", got["name"])

	again, err := h.ExecuteStrategy()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestConflictHandler_ListenerPanic(t *testing.T) {
	l := ListenerFunc(func(models.ConflictEvent) { panic("listener bug") })

	h := newHandler(t, Options{Listener: l})

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)
	assert.Equal(t, models.Record{"id": 1, "version": 3, "name": "Alice"}, got)
	assert.False(t, h.Conflicted())
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestConflictHandler_ExecutesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStrategy(ctrl)
	l := mock.NewMockListener(ctrl)

	s.EXPECT().Resolve(gomock.Any()).Return(bob(), nil).Times(1)
	l.EXPECT().ConflictOccurred(gomock.Any()).Times(1)

	h := newHandler(t, Options{Strategy: s, Listener: l})

	first, err := h.ExecuteStrategy()
	require.NoError(t, err)
	second, err := h.ExecuteStrategy()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConflictHandler_DoesNotAliasInputs(t *testing.T) {
	client := alice()
	server := bob()
	h := newHandler(t, Options{Client: client, Server: server})

	client["name"] = "Changed"
	server["version"] = 99

	got, err := h.ExecuteStrategy()
	require.NoError(t, err)
	assert.Equal(t, models.Record{"id": 1, "version": 3, "name": "Alice"}, got)

	got["name"] = "Mutated"
	again, _ := h.ExecuteStrategy()
	assert.Equal(t, "Alice", again["name"])
}

func TestConflictHandler_Deterministic(t *testing.T) {
	for _, s := range []strategy.Strategy{strategy.NewClientWins(), strategy.NewServerWins(), strategy.NewManual("")} {
		a, errA := newHandler(t, Options{Strategy: s}).ExecuteStrategy()
		b, errB := newHandler(t, Options{Strategy: s}).ExecuteStrategy()

		assert.Equal(t, errA, errB)
		assert.Equal(t, a, b)
	}
}

func TestNewConflictHandler_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "no client", opts: Options{Server: bob(), ObjectState: state.NewVersionedState("")}},
		{name: "no server", opts: Options{Client: alice(), ObjectState: state.NewVersionedState("")}},
		{name: "no object state", opts: Options{Client: alice(), Server: bob()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewConflictHandler(tt.opts)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, ErrInvalidHandlerOptions)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "unresolved", StateUnresolved.String())
	assert.Equal(t, "State(42)", State(42).String())
}
