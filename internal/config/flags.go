package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client configuration flags from args (without the
// program name).
//
// Flags:
//
//	-a server HTTP address, with or without scheme
//	-ws realtime websocket URL
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout HTTP request timeout (e.g. "15s")
//	-backoff-base first reconnect delay (e.g. "1s")
//	-backoff-max reconnect delay cap (e.g. "30s")
//	-handshake-timeout websocket handshake timeout
//	-baseline-interval unseen baseline refresh interval
//	-log-file log file path
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("chat-client", flag.ContinueOnError)

	var (
		httpAddress      string
		realtimeAddress  string
		databaseDSN      string
		jsonConfigPath   string
		requestTimeout   time.Duration
		backoffBase      time.Duration
		backoffMax       time.Duration
		handshakeTimeout time.Duration
		baselineInterval time.Duration
		logFile          string
		logLevel         string
	)

	fs.StringVar(&httpAddress, "a", "", "Server HTTP address")
	fs.StringVar(&realtimeAddress, "ws", "", "Realtime websocket URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "HTTP request timeout (e.g., 15s)")
	fs.DurationVar(&backoffBase, "backoff-base", 0, "First reconnect delay (e.g., 1s)")
	fs.DurationVar(&backoffMax, "backoff-max", 0, "Reconnect delay cap (e.g., 30s)")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Websocket handshake timeout")
	fs.DurationVar(&baselineInterval, "baseline-interval", 0, "Unseen baseline refresh interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:     httpAddress,
			RealtimeAddress: realtimeAddress,
			RequestTimeout:  requestTimeout,
		},
		Realtime: Realtime{
			BackoffBase:      backoffBase,
			BackoffMax:       backoffMax,
			HandshakeTimeout: handshakeTimeout,
		},
		Workers: Workers{
			BaselineInterval: baselineInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
