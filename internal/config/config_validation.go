// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallbacks applied by validation when a source left a field unset.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultBrokerQueue    = "measurements"
	DefaultClientAddress  = "http://localhost:8080"
	DefaultClientTimeout  = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// validate checks the final merged [StructuredConfig] and fills in defaults
// so the service starts out of the box:
//   - Server.HTTPAddress falls back to [DefaultHTTPAddress];
//   - Server.RequestTimeout falls back to [DefaultRequestTimeout];
//   - Broker.Queue falls back to [DefaultBrokerQueue] when a broker URL
//     is configured without a queue name.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Broker.URL != "" && cfg.Broker.Queue == "" {
		cfg.Broker.Queue = DefaultBrokerQueue
	}

	if cfg.Seed.File != "" && !cfg.Seed.Enabled {
		return ErrSeedFileWithoutSeeding
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientAddress
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultClientTimeout
	}

	return nil
}
