// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"conflict": {
			"provider": "hash",
			"strategy": "field_merge",
			"type_strategies": {"Task": "server_wins"}
		},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "5s"},
		"storage": {"db": {"dsn": "sync.db"}, "snapshot_retention": "24h"},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"workers": {"concurrency": 3},
		"metrics": {"textfile_path": "sync.prom"}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "hash", cfg.Conflict.Provider)
	assert.Equal(t, "field_merge", cfg.Conflict.Strategy)
	assert.Equal(t, map[string]string{"Task": "server_wins"}, cfg.Conflict.TypeStrategies)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "sync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.Storage.SnapshotRetention)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3, cfg.Workers.Concurrency)
	assert.Equal(t, "sync.prom", cfg.Metrics.TextfilePath)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", `
conflict:
  provider: vector_clock
  strategy: manual
  state_field: vc
adapter:
  http_address: http://sync.local:8080
  request_timeout: 2s
storage:
  db:
    dsn: client.db
workers:
  concurrency: 6
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "vector_clock", cfg.Conflict.Provider)
	assert.Equal(t, "manual", cfg.Conflict.Strategy)
	assert.Equal(t, "vc", cfg.Conflict.StateField)
	assert.Equal(t, "http://sync.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 6, cfg.Workers.Concurrency)
}

func TestParseFile_YMLNumericDuration(t *testing.T) {
	p := writeConfigFile(t, "config.yml", "server:\n  request_timeout: 1000000000\n")

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	_, err = parseFile(writeConfigFile(t, "bad.json", "{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")

	_, err = parseFile(writeConfigFile(t, "bad.yaml", "server: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")

	_, err = parseFile(writeConfigFile(t, "dur.json", `{"server": {"request_timeout": "soon"}}`))
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Duration(1000), time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(out))
}
