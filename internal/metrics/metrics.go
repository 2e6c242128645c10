// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes conflict and mutation counters to prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sync-conflicts/internal/conflict"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

const namespace = "sync"

var _ conflict.Listener = (*Listener)(nil)

// Listener counts conflict outcomes per return type. It is meant to be
// combined with other listeners through [conflict.Listeners].
type Listener struct {
	resolved   *prometheus.CounterVec
	unresolved *prometheus.CounterVec
}

// NewListener creates the conflict counters and registers them on reg.
func NewListener(reg prometheus.Registerer) (*Listener, error) {
	l := &Listener{
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_resolved_total",
			Help:      "Conflicts resolved automatically by a strategy.",
		}, []string{"return_type"}),
		unresolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_unresolved_total",
			Help:      "Conflicts a strategy left to the application.",
		}, []string{"return_type"}),
	}

	for _, c := range []prometheus.Collector{l.resolved, l.unresolved} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// ConflictOccurred implements [conflict.Listener].
func (l *Listener) ConflictOccurred(event models.ConflictEvent) {
	if event.Conflicted {
		l.unresolved.WithLabelValues(event.ReturnType).Inc()
		return
	}
	l.resolved.WithLabelValues(event.ReturnType).Inc()
}

// Mutation outcomes recorded by [ServerMetrics].
const (
	OutcomeApplied  = "applied"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
)

// ServerMetrics counts mutations handled by the reference server.
type ServerMetrics struct {
	mutations *prometheus.CounterVec
}

// NewServerMetrics creates the mutation counter and registers it on reg.
func NewServerMetrics(reg prometheus.Registerer) (*ServerMetrics, error) {
	m := &ServerMetrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutations received by the server, by return type and outcome.",
		}, []string{"return_type", "outcome"}),
	}
	if err := reg.Register(m.mutations); err != nil {
		return nil, err
	}

	return m, nil
}

// MutationHandled records one mutation outcome.
func (m *ServerMetrics) MutationHandled(returnType, outcome string) {
	m.mutations.WithLabelValues(returnType, outcome).Inc()
}

// WriteTextfile writes everything gathered from g to path in the text
// exposition format read by the node exporter textfile collector. The file
// is replaced through a rename, so readers never see a partial write.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
