// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/commonground/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/commonground/config.yaml",
	"/etc/commonground/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:                   "/data/commonground.duckdb",
			MaxMemory:              "1GB",
			Threads:                0,    // 0 = use runtime.NumCPU()
			PreserveInsertionOrder: true, // DuckDB default
			SeedSampleData:         false,
		},
		Server: ServerConfig{
			Enabled:         true,
			Host:            "0.0.0.0",
			Port:            9464,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			RefreshInterval: 15 * time.Minute,
			Engine:          *recommend.DefaultConfig(),
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  5,
			FailureRatio: 0.6,
		},
	}
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// DUCKDB_PATH -> database.path
	// RECOMMEND_CLUSTERS -> recommend.engine.kmeans.clusters
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"recommend.engine.events.virtual_keywords",
	"recommend.engine.events.academic_buildings",
	"recommend.engine.mentor.skills",
	"recommend.engine.mentor.interests",
	"recommend.engine.mentor.meeting_options",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Database
	"duckdb_path":                     "database.path",
	"duckdb_max_memory":               "database.max_memory",
	"duckdb_threads":                  "database.threads",
	"duckdb_preserve_insertion_order": "database.preserve_insertion_order",
	"seed_sample_data":                "database.seed_sample_data",

	// Observability listener
	"metrics_enabled":       "server.enabled",
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation core
	"recommend_refresh_interval":      "recommend.refresh_interval",
	"recommend_clusters":              "recommend.engine.kmeans.clusters",
	"recommend_kmeans_tolerance":      "recommend.engine.kmeans.tolerance",
	"recommend_kmeans_max_iterations": "recommend.engine.kmeans.max_iterations",
	"recommend_default_top_n":         "recommend.engine.limits.default_top_n",
	"recommend_max_top_n":             "recommend.engine.limits.max_top_n",

	// Event location vocabularies
	"event_virtual_keywords":   "recommend.engine.events.virtual_keywords",
	"event_academic_buildings": "recommend.engine.events.academic_buildings",

	// Mentor vectorization
	"mentor_weight_skills":            "recommend.engine.mentor.weights.skills",
	"mentor_weight_interests":         "recommend.engine.mentor.weights.interests",
	"mentor_weight_ai_interest":       "recommend.engine.mentor.weights.ai_interest",
	"mentor_weight_experience_years":  "recommend.engine.mentor.weights.experience_years",
	"mentor_weight_preferred_meeting": "recommend.engine.mentor.weights.preferred_meeting",
	"mentor_skills":                   "recommend.engine.mentor.skills",
	"mentor_interests":                "recommend.engine.mentor.interests",
	"mentor_meeting_options":          "recommend.engine.mentor.meeting_options",
	"mentor_experience_cap":           "recommend.engine.mentor.experience_cap",

	// Mentor graph and PageRank
	"graph_alpha_sim":         "recommend.engine.graph.alpha_sim",
	"graph_beta_likes":        "recommend.engine.graph.beta_likes",
	"graph_like_cap":          "recommend.engine.graph.like_cap",
	"graph_alpha_blend":       "recommend.engine.graph.alpha_blend",
	"pagerank_damping":        "recommend.engine.pagerank.damping",
	"pagerank_max_iterations": "recommend.engine.pagerank.max_iterations",
	"pagerank_tolerance":      "recommend.engine.pagerank.tolerance",

	// Explanations
	"explain_short_duration_hours": "recommend.engine.explain.short_duration_hours",
	"explain_long_duration_hours":  "recommend.engine.explain.long_duration_hours",
	"explain_quality_points":       "recommend.engine.explain.quality_points",
	"explain_favorite_reasons":     "recommend.engine.explain.favorite_reasons",

	// Circuit breaker
	"breaker_enabled":       "breaker.enabled",
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//   - MENTOR_WEIGHT_SKILLS -> recommend.engine.mentor.weights.skills
//   - PAGERANK_DAMPING -> recommend.engine.pagerank.damping
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
