// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/strategy"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

// State is the lifecycle stage of a [ConflictHandler].
type State int

const (
	StateInitialized State = iota
	StateExecuting
	StateResolved
	StateUnresolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateExecuting:
		return "executing"
	case StateResolved:
		return "resolved"
	case StateUnresolved:
		return "unresolved"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configure a [ConflictHandler].
type Options struct {
	// Base is the record as it was before the client mutated it. Optional.
	Base models.Record
	// Client is the record the client tried to submit. Required.
	Client models.Record
	// Server is the server's current copy of the record. Required.
	Server models.Record
	// ReturnType names the entity type, e.g. "Task".
	ReturnType string
	// OperationName labels the mutation in events and logs.
	OperationName string

	ObjectState state.ObjectState
	// Strategy defaults to client wins.
	Strategy strategy.Strategy
	Listener Listener
	Logger   *logger.Logger
}

// ConflictHandler resolves one conflict. It is not reusable: the first call
// to ExecuteStrategy fixes the outcome, later calls return it again.
type ConflictHandler struct {
	base   models.Record
	client models.Record
	server models.Record

	returnType    string
	operationName string

	objectState state.ObjectState
	strategy    strategy.Strategy
	listener    Listener
	log         *logger.Logger

	once   sync.Once
	mu     sync.RWMutex
	state  State
	result models.Record
	err    error
}

// NewConflictHandler validates opts and copies the records, so later changes
// to the caller's maps do not affect the handler.
func NewConflictHandler(opts Options) (*ConflictHandler, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("%w: client record is required", ErrInvalidHandlerOptions)
	}
	if opts.Server == nil {
		return nil, fmt.Errorf("%w: server record is required", ErrInvalidHandlerOptions)
	}
	if opts.ObjectState == nil {
		return nil, fmt.Errorf("%w: object state is required", ErrInvalidHandlerOptions)
	}

	s := opts.Strategy
	if s == nil {
		s = strategy.NewClientWins()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &ConflictHandler{
		base:          opts.Base.Clone(),
		client:        opts.Client.Clone(),
		server:        opts.Server.Clone(),
		returnType:    opts.ReturnType,
		operationName: opts.OperationName,
		objectState:   opts.ObjectState,
		strategy:      s,
		listener:      opts.Listener,
		log:           log,
		state:         StateInitialized,
	}, nil
}

// ExecuteStrategy detects and resolves the conflict and returns the record
// to submit. When no conflict exists the client record is returned as is.
// When the strategy leaves the conflict unresolved the client record is
// returned, the error is nil and [ConflictHandler.Conflicted] reports true.
func (h *ConflictHandler) ExecuteStrategy() (models.Record, error) {
	h.once.Do(h.execute)

	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.result.Clone(), h.err
}

// Conflicted reports whether the handler ended without a record that is
// safe to resubmit, either because the conflict stayed unresolved or
// because resolution failed.
func (h *ConflictHandler) Conflicted() bool {
	s := h.State()
	return s == StateUnresolved || s == StateFailed
}

// State returns the current lifecycle stage.
func (h *ConflictHandler) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

func (h *ConflictHandler) execute() {
	h.setState(StateExecuting)

	log := h.log.With().
		Str("operation", h.operationName).
		Str("return_type", h.returnType).
		Logger()

	conflicted, err := h.objectState.HasConflict(h.client, h.server)
	if err != nil {
		log.Err(err).Str("func", "ConflictHandler.execute").Msg("conflict detection failed")
		h.finish(StateFailed, nil, fmt.Errorf("detect conflict: %w", err))
		return
	}
	if !conflicted {
		log.Debug().Str("func", "ConflictHandler.execute").Msg("no conflict detected")
		h.finish(StateResolved, h.client, nil)
		return
	}

	resolved, err := h.strategy.Resolve(models.ConflictData{
		Base:          h.base.Clone(),
		Client:        h.client.Clone(),
		Server:        h.server.Clone(),
		ReturnType:    h.returnType,
		OperationName: h.operationName,
	})
	switch {
	case strategy.IsUnresolved(err):
		log.Debug().Str("func", "ConflictHandler.execute").Str("reason", err.Error()).Msg("conflict left unresolved")
		h.finish(StateUnresolved, h.client, nil)
		h.notify(nil, true)
		return
	case err != nil:
		log.Err(err).Str("func", "ConflictHandler.execute").Msg("strategy failed")
		h.finish(StateFailed, nil, err)
		return
	case resolved == nil:
		h.finish(StateFailed, nil, strategy.ErrEmptyResolution)
		return
	}

	final, err := h.objectState.AssignServerState(resolved, h.server)
	if err != nil {
		log.Err(err).Str("func", "ConflictHandler.execute").Msg("assigning server state failed")
		h.finish(StateFailed, nil, fmt.Errorf("assign server state: %w", err))
		return
	}

	log.Debug().Str("func", "ConflictHandler.execute").Msg("conflict resolved")
	h.finish(StateResolved, final, nil)
	h.notify(final, false)
}

func (h *ConflictHandler) setState(s State) {
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

func (h *ConflictHandler) finish(s State, result models.Record, err error) {
	h.mu.Lock()
	h.state = s
	h.result = result
	h.err = err
	h.mu.Unlock()
}

// notify hands a copy of the outcome to the listener. A panicking listener
// is logged and ignored.
func (h *ConflictHandler) notify(resolved models.Record, conflicted bool) {
	if h.listener == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			h.log.Error().
				Str("func", "ConflictHandler.notify").
				Interface("panic", r).
				Msg("conflict listener panicked")
		}
	}()

	h.listener.ConflictOccurred(models.ConflictEvent{
		OperationName: h.operationName,
		ReturnType:    h.returnType,
		Base:          h.base.Clone(),
		Client:        h.client.Clone(),
		Server:        h.server.Clone(),
		Resolved:      resolved.Clone(),
		Conflicted:    conflicted,
	})
}
