// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the chat
// client. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log holds logger destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// Storage holds configuration of the local durable storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds addresses and timeouts of the chat server endpoints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Realtime holds reconnect tuning of the realtime connection.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Log configures the client logger.
type Log struct {
	// File is the log file path. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local SQLite database that keeps the
// session token.
type DB struct {
	// DSN is the SQLite file path (e.g. "chat-client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the chat server endpoints.
type Adapter struct {
	// HTTPAddress is the base address of the HTTP API, with or without a
	// scheme (e.g. "localhost:5000" or "https://chat.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RealtimeAddress is the websocket endpoint. When empty it is derived
	// from HTTPAddress ("ws(s)://host/ws").
	// Env: ADAPTER_REALTIME_ADDRESS
	RealtimeAddress string `env:"REALTIME_ADDRESS"`

	// RequestTimeout bounds every outbound HTTP request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Realtime tunes the reconnect loop of the realtime connection.
type Realtime struct {
	// BackoffBase is the first reconnect delay; it doubles on every failed
	// attempt.
	// Env: REALTIME_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffMax caps the reconnect delay.
	// Env: REALTIME_BACKOFF_MAX
	BackoffMax time.Duration `env:"BACKOFF_MAX"`

	// HandshakeTimeout bounds a single websocket handshake.
	// Env: REALTIME_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// BaselineInterval is how often the unseen-counter baseline is
	// re-fetched from the server in addition to every reconnect.
	// Env: WORKERS_BASELINE_INTERVAL
	BaselineInterval time.Duration `env:"BASELINE_INTERVAL"`

	// AckTimeout bounds a single mark-seen request.
	// Env: WORKERS_ACK_TIMEOUT
	AckTimeout time.Duration `env:"ACK_TIMEOUT"`

	// AckQueueSize is the capacity of the mark-seen queue. Acks that do not
	// fit are dropped.
	// Env: WORKERS_ACK_QUEUE_SIZE
	AckQueueSize int `env:"ACK_QUEUE_SIZE"`
}

// defaultConfig returns the built-in defaults, the lowest-priority source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{Level: "debug"},
		Storage: Storage{
			DB: DB{DSN: "chat-client.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 15 * time.Second,
		},
		Realtime: Realtime{
			BackoffBase:      time.Second,
			BackoffMax:       30 * time.Second,
			HandshakeTimeout: 10 * time.Second,
		},
		Workers: Workers{
			BaselineInterval: 5 * time.Minute,
			AckTimeout:       5 * time.Second,
			AckQueueSize:     64,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
