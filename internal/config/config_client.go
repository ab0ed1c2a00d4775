package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ClientLog holds logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP API base address.
	HTTPAddress string
	// RealtimeAddress is the websocket endpoint URL.
	RealtimeAddress string
	// RequestTimeout is the default timeout for outbound HTTP requests.
	RequestTimeout time.Duration
}

// ClientRealtime holds reconnect settings.
type ClientRealtime struct {
	BackoffBase      time.Duration
	BackoffMax       time.Duration
	HandshakeTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	BaselineInterval time.Duration
	AckTimeout       time.Duration
	AckQueueSize     int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Log      ClientLog
	Adapter  ClientAdapter
	Realtime ClientRealtime
	Storage  ClientStorage
	Workers  ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	realtimeAddr := cfg.Adapter.RealtimeAddress
	if realtimeAddr == "" && cfg.Adapter.HTTPAddress != "" {
		derived, err := deriveRealtimeAddress(cfg.Adapter.HTTPAddress)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
		}
		realtimeAddr = derived
	}

	clientCfg := &ClientConfig{
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RealtimeAddress: realtimeAddr,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
		},
		Realtime: ClientRealtime{
			BackoffBase:      cfg.Realtime.BackoffBase,
			BackoffMax:       cfg.Realtime.BackoffMax,
			HandshakeTimeout: cfg.Realtime.HandshakeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			BaselineInterval: cfg.Workers.BaselineInterval,
			AckTimeout:       cfg.Workers.AckTimeout,
			AckQueueSize:     cfg.Workers.AckQueueSize,
		},
	}

	return clientCfg, clientCfg.validate()
}

// deriveRealtimeAddress maps an HTTP API address to its websocket endpoint:
// http -> ws, https -> wss, path "/ws".
func deriveRealtimeAddress(httpAddress string) (string, error) {
	raw := strings.TrimSpace(httpAddress)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address %q has no host", httpAddress)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws"
	u.RawQuery = ""

	return u.String(), nil
}
