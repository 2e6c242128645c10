// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags
// and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Conflict selects the object state provider and the resolution
	// strategies.
	Conflict Conflict `envPrefix:"CONFLICT_"`

	// Adapter holds the client's view of the mutation server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the base snapshot database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the reference
	// mutation server.
	Server Server `envPrefix:"SERVER_"`

	// Workers bounds batch conflict resolution.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics controls where the client exports its conflict counters.
	Metrics Metrics `envPrefix:"METRICS_"`

	// ConfigFilePath is the optional path to a configuration file. Files
	// ending in .yaml or .yml are parsed as YAML, everything else as JSON.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`

	// Args holds the positional command line arguments left after the
	// flags, e.g. the client command and its input file.
	Args []string
}

// Conflict configures conflict detection and resolution.
type Conflict struct {
	// Provider names the object state used for detection:
	// version, timestamp, hash or vector_clock.
	// Env: CONFLICT_PROVIDER
	Provider string `env:"PROVIDER"`

	// Strategy names the default strategy:
	// client_wins, server_wins, field_merge or manual.
	// Env: CONFLICT_STRATEGY
	Strategy string `env:"STRATEGY"`

	// StateField overrides the field compared by the provider
	// (e.g. "rev" instead of "version").
	// Env: CONFLICT_VERSION_FIELD
	StateField string `env:"VERSION_FIELD"`

	// TypeStrategies maps a return type to a strategy name, overriding
	// Strategy for that type (e.g. "Task:server_wins,Note:field_merge").
	// Env: CONFLICT_TYPE_STRATEGIES
	TypeStrategies map[string]string `env:"TYPE_STRATEGIES"`
}

// Adapter holds the outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the mutation server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	// SnapshotRetention is how long an unacknowledged base snapshot is
	// kept before the client purges it (e.g. "168h").
	// Env: STORAGE_SNAPSHOT_RETENTION
	SnapshotRetention time.Duration `env:"SNAPSHOT_RETENTION"`
}

// DB holds connection settings for the SQLite base snapshot store.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "file:sync.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for concurrent conflict resolution.
type Workers struct {
	// Concurrency caps the number of conflicts resolved in parallel.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Metrics holds the client metrics export settings.
type Metrics struct {
	// TextfilePath is the file the client writes its prometheus counters to
	// on exit, in the node exporter textfile format. Empty disables export.
	// Env: METRICS_TEXTFILE
	TextfilePath string `env:"TEXTFILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first non-zero value wins, in
// this order:
//  1. Environment variables
//  2. Command-line flags
//  3. Configuration file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
}
