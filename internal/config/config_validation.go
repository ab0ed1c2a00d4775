// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Field-level requirements
// are enforced on the [ClientConfig] view; here only cross-source sanity is
// checked.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.AckQueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	// the token slot must survive restarts
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RealtimeAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Realtime.BackoffBase <= 0 || cfg.Realtime.BackoffMax < cfg.Realtime.BackoffBase {
		return ErrInvalidRealtimeConfigs
	}

	if cfg.Workers.BaselineInterval <= 0 || cfg.Workers.AckQueueSize <= 0 || cfg.Workers.AckTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
