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
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"LOG_FILE":  "/var/log/chat.log",
		"LOG_LEVEL": "info",

		"STORAGE_DB_DATABASE_URI": "chat.db",

		"ADAPTER_ADDRESS":          "localhost:5000",
		"ADAPTER_REALTIME_ADDRESS": "ws://localhost:5000/ws",
		"ADAPTER_REQUEST_TIMEOUT":  "20s",

		"REALTIME_BACKOFF_BASE":      "2s",
		"REALTIME_BACKOFF_MAX":       "1m",
		"REALTIME_HANDSHAKE_TIMEOUT": "5s",

		"WORKERS_BASELINE_INTERVAL": "10m",
		"WORKERS_ACK_TIMEOUT":       "3s",
		"WORKERS_ACK_QUEUE_SIZE":    "16",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/chat.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "chat.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://localhost:5000/ws", cfg.Adapter.RealtimeAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Realtime.BackoffBase)
	assert.Equal(t, time.Minute, cfg.Realtime.BackoffMax)
	assert.Equal(t, 5*time.Second, cfg.Realtime.HandshakeTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.BaselineInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.AckTimeout)
	assert.Equal(t, 16, cfg.Workers.AckQueueSize)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("REALTIME_BACKOFF_BASE", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}
