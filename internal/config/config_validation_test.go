// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:     "localhost:5000",
			RealtimeAddress: "ws://localhost:5000/ws",
			RequestTimeout:  time.Second,
		},
		Realtime: ClientRealtime{BackoffBase: time.Second, BackoffMax: 30 * time.Second},
		Storage:  ClientStorage{DB: ClientDB{DSN: "chat.db"}},
		Workers:  ClientWorkers{BaselineInterval: time.Minute, AckTimeout: time.Second, AckQueueSize: 8},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no http address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no realtime address", mutate: func(c *ClientConfig) { c.Adapter.RealtimeAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero backoff", mutate: func(c *ClientConfig) { c.Realtime.BackoffBase = 0 }, wantErr: ErrInvalidRealtimeConfigs},
		{name: "cap below base", mutate: func(c *ClientConfig) { c.Realtime.BackoffMax = time.Millisecond }, wantErr: ErrInvalidRealtimeConfigs},
		{name: "zero queue", mutate: func(c *ClientConfig) { c.Workers.AckQueueSize = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero baseline interval", mutate: func(c *ClientConfig) { c.Workers.BaselineInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeriveRealtimeAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:5000", want: "ws://localhost:5000/ws"},
		{in: "http://chat.local:8080/api", want: "ws://chat.local:8080/ws"},
		{in: "https://chat.example.com", want: "wss://chat.example.com/ws"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := deriveRealtimeAddress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClientConfig_KeepsExplicitRealtimeAddress(t *testing.T) {
	sc := defaultConfig()
	sc.Adapter.RealtimeAddress = "ws://push.example.com/socket"

	cfg, err := newClientConfig(sc)
	require.NoError(t, err)
	assert.Equal(t, "ws://push.example.com/socket", cfg.Adapter.RealtimeAddress)
}
