// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/commonground/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
//	eng, err := engine.New(store, &cfg.Recommend.Engine, logger)
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Breaker   BreakerConfig   `koanf:"breaker"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path                   string `koanf:"path" validate:"required"`
	MaxMemory              string `koanf:"max_memory" validate:"required"`
	Threads                int    `koanf:"threads" validate:"min=0"`   // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // Whether to preserve insertion order (default true)
	SeedSampleData         bool   `koanf:"seed_sample_data"`         // Load a small sample community into empty tables
}

// ServerConfig holds the observability HTTP listener settings.
// The listener only serves /metrics and /healthz.
type ServerConfig struct {
	// Enabled starts the listener.
	// Default: true
	Enabled bool `koanf:"enabled"`

	Host string `koanf:"host"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`

	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes file:line in every entry.
	// Default: false
	Caller bool `koanf:"caller"`
}

// RecommendConfig holds the recommendation core settings.
type RecommendConfig struct {
	// RefreshInterval is how often the cluster refresh service re-clusters
	// events. Zero disables the service.
	// Default: 15m
	RefreshInterval time.Duration `koanf:"refresh_interval" validate:"min=0"`

	// Engine holds the algorithm parameters, vocabularies and limits.
	Engine recommend.Config `koanf:"engine"`
}

// BreakerConfig holds the circuit breaker settings for the store.
// The breaker fails fast while the database is unhealthy; it never retries.
type BreakerConfig struct {
	// Enabled wraps the store in a circuit breaker.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of trial requests allowed while half-open.
	// Default: 3
	MaxRequests uint32 `koanf:"max_requests" validate:"min=1"`

	// Interval is the closed-state window after which counts reset.
	// Default: 1m
	Interval time.Duration `koanf:"interval" validate:"min=0"`

	// Timeout is how long the breaker stays open before probing.
	// Default: 30s
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// MinRequests is the number of requests in a window before the failure
	// ratio is considered.
	// Default: 5
	MinRequests uint32 `koanf:"min_requests" validate:"min=1"`

	// FailureRatio opens the breaker once reached.
	// Default: 0.6
	FailureRatio float64 `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}
