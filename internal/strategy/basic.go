// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"github.com/MKhiriev/go-sync-conflicts/models"
)

var (
	_ Strategy = (*ClientWins)(nil)
	_ Strategy = (*ServerWins)(nil)
	_ Strategy = (*Manual)(nil)
)

// ClientWins keeps the client's data. The handler afterwards copies the
// server state fields over, so the resubmitted record carries the client
// substance on top of the server's bookkeeping. It is the default strategy.
type ClientWins struct{}

// NewClientWins returns the client-wins strategy.
func NewClientWins() *ClientWins {
	return &ClientWins{}
}

// Resolve implements [Strategy].
func (ClientWins) Resolve(conflict models.ConflictData) (models.Record, error) {
	return conflict.Client.Clone(), nil
}

// ServerWins discards the client's changes in favour of the server copy.
type ServerWins struct{}

// NewServerWins returns the server-wins strategy.
func NewServerWins() *ServerWins {
	return &ServerWins{}
}

// Resolve implements [Strategy].
func (ServerWins) Resolve(conflict models.ConflictData) (models.Record, error) {
	return conflict.Server.Clone(), nil
}

// Manual never resolves anything. It defers every conflict to the
// application, typically to a listener that shows a resolution UI.
type Manual struct {
	Reason string
}

// NewManual returns a strategy that leaves every conflict unresolved.
func NewManual(reason string) *Manual {
	return &Manual{Reason: reason}
}

// Resolve implements [Strategy].
func (m Manual) Resolve(models.ConflictData) (models.Record, error) {
	reason := m.Reason
	if reason == "" {
		reason = "manual resolution required"
	}

	return nil, Unresolved(reason)
}
