// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

func TestListeners_FanOut(t *testing.T) {
	var calls []string
	ls := Listeners{
		ListenerFunc(func(models.ConflictEvent) { calls = append(calls, "first") }),
		nil,
		ListenerFunc(func(models.ConflictEvent) { calls = append(calls, "second") }),
	}

	ls.ConflictOccurred(models.ConflictEvent{})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestLoggingListener(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	NewLoggingListener(log).ConflictOccurred(models.ConflictEvent{
		OperationName: "updateTask",
		ReturnType:    "Task",
		Conflicted:    true,
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "updateTask", entry["operation"])
	assert.Equal(t, "Task", entry["return_type"])
	assert.Equal(t, true, entry["conflicted"])
}
