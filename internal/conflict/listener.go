// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import (
	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

//go:generate mockgen -source=listener.go -destination=../mock/listener_mock.go -package=mock

// Listener is notified once per detected conflict, after the handler has
// reached its outcome. Events carry copies of the records, so a listener
// cannot influence the resolution.
type Listener interface {
	ConflictOccurred(event models.ConflictEvent)
}

// ListenerFunc adapts a plain function to [Listener].
type ListenerFunc func(event models.ConflictEvent)

// ConflictOccurred implements [Listener].
func (f ListenerFunc) ConflictOccurred(event models.ConflictEvent) {
	f(event)
}

// Listeners fans an event out to every non-nil listener in order.
type Listeners []Listener

// ConflictOccurred implements [Listener].
func (ls Listeners) ConflictOccurred(event models.ConflictEvent) {
	for _, l := range ls {
		if l == nil {
			continue
		}
		l.ConflictOccurred(event)
	}
}

// LoggingListener writes every conflict event to a zerolog logger.
type LoggingListener struct {
	log *logger.Logger
}

// NewLoggingListener returns a listener logging to log.
func NewLoggingListener(log *logger.Logger) *LoggingListener {
	return &LoggingListener{log: log}
}

// ConflictOccurred implements [Listener].
func (l *LoggingListener) ConflictOccurred(event models.ConflictEvent) {
	entry := l.log.Info()
	if event.Conflicted {
		entry = l.log.Warn()
	}

	entry.
		Str("func", "LoggingListener.ConflictOccurred").
		Str("operation", event.OperationName).
		Str("return_type", event.ReturnType).
		Bool("conflicted", event.Conflicted).
		Interface("client", event.Client).
		Interface("server", event.Server).
		Interface("resolved", event.Resolved).
		Msg("conflict occurred")
}
