// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"CONFLICT_PROVIDER":        "timestamp",
		"CONFLICT_STRATEGY":        "field_merge",
		"CONFLICT_VERSION_FIELD":   "modifiedAt",
		"CONFLICT_TYPE_STRATEGIES": "Task:server_wins,Note:manual",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"STORAGE_DB_DSN":             "sync.db",
		"STORAGE_SNAPSHOT_RETENTION": "72h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"WORKERS_CONCURRENCY": "8",

		"METRICS_TEXTFILE": "/tmp/sync.prom",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)

	assert.Equal(t, "timestamp", cfg.Conflict.Provider)
	assert.Equal(t, "field_merge", cfg.Conflict.Strategy)
	assert.Equal(t, "modifiedAt", cfg.Conflict.StateField)
	assert.Equal(t, map[string]string{"Task": "server_wins", "Note": "manual"}, cfg.Conflict.TypeStrategies)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "sync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 72*time.Hour, cfg.Storage.SnapshotRetention)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 8, cfg.Workers.Concurrency)
	assert.Equal(t, "/tmp/sync.prom", cfg.Metrics.TextfilePath)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFLICT_PROVIDER": "hash",
		"STORAGE_DB_DSN":    "sync.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "hash", cfg.Conflict.Provider)
	assert.Equal(t, "sync.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Conflict.Strategy)
	assert.Zero(t, cfg.Workers.Concurrency)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "SERVER_REQUEST_TIMEOUT", val: "soon"},
		{name: "bad int", key: "WORKERS_CONCURRENCY", val: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
