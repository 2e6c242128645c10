// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── NewLogger ────────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── NewClientLogger ──────────────────────────────────────────────────────────

func TestNewClientLogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("client", &buf, zerolog.InfoLevel)

	l.Debug().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Str("operation", "updateTask").Msg("conflict left unresolved")
	out := buf.String()
	assert.Contains(t, out, "conflict left unresolved")
	assert.Contains(t, out, "operation=updateTask")
	assert.Contains(t, out, "role=client")
}

// ── Nop / GetChildLogger ─────────────────────────────────────────────────────

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "inherited").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context { return c.Str("extra", "x") })

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited", entry["role"])
	assert.Equal(t, "x", entry["extra"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "extra")
}

// ── context helpers ──────────────────────────────────────────────────────────

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])

	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContextOr(t *testing.T) {
	var fallbackBuf, ctxBuf bytes.Buffer
	fallback := &Logger{zerolog.New(&fallbackBuf)}

	FromContextOr(context.Background(), fallback).Info().Msg("fallback")
	assert.NotEmpty(t, fallbackBuf.String())

	zl := zerolog.New(&ctxBuf)
	FromContextOr(zl.WithContext(context.Background()), fallback).Info().Msg("ctx")
	assert.NotEmpty(t, ctxBuf.String())

	assert.NotNil(t, FromContextOr(context.Background(), nil))
}
