// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DUCKDB_PATH", "database.path"},
		{"DUCKDB_MAX_MEMORY", "database.max_memory"},
		{"SEED_SAMPLE_DATA", "database.seed_sample_data"},
		{"HTTP_PORT", "server.port"},
		{"METRICS_ENABLED", "server.enabled"},
		{"LOG_LEVEL", "logging.level"},
		{"RECOMMEND_CLUSTERS", "recommend.engine.kmeans.clusters"},
		{"RECOMMEND_REFRESH_INTERVAL", "recommend.refresh_interval"},
		{"MENTOR_WEIGHT_SKILLS", "recommend.engine.mentor.weights.skills"},
		{"MENTOR_MEETING_OPTIONS", "recommend.engine.mentor.meeting_options"},
		{"GRAPH_ALPHA_BLEND", "recommend.engine.graph.alpha_blend"},
		{"PAGERANK_DAMPING", "recommend.engine.pagerank.damping"},
		{"BREAKER_TIMEOUT", "breaker.timeout"},
		{"log_level", "logging.level"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestEnvMappings_TargetsExist checks every mapped path is a real config key.
func TestEnvMappings_TargetsExist(t *testing.T) {
	keys := make(map[string]bool)
	collectKoanfKeys(reflect.TypeOf(Config{}), "", keys)

	for env, path := range envMappings {
		if !keys[path] {
			t.Errorf("env %s maps to unknown key %q", env, path)
		}
	}
	for _, path := range sliceConfigPaths {
		if !keys[path] {
			t.Errorf("slice path %q is not a config key", path)
		}
	}
}

func collectKoanfKeys(typ reflect.Type, prefix string, out map[string]bool) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
		if name == "" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			collectKoanfKeys(f.Type, path, out)
			continue
		}
		out[path] = true
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		t.Cleanup(func() { os.Remove(configPath) })

		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}

		t.Setenv(ConfigPathEnvVar, customPath)
		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})
}

// TestLoadWithKoanf_Defaults loads with no file and no mapped env vars.
func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("LoadWithKoanf() = %+v, want defaults", cfg)
	}
}

// TestLoadWithKoanf_EnvVars tests loading configuration from environment variables
func TestLoadWithKoanf_EnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_CLUSTERS", "5")
	t.Setenv("RECOMMEND_REFRESH_INTERVAL", "2m")
	t.Setenv("MENTOR_WEIGHT_SKILLS", "0.7")
	t.Setenv("MENTOR_MEETING_OPTIONS", "Zoom, Phone")
	t.Setenv("BREAKER_ENABLED", "false")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Engine.KMeans.Clusters != 5 {
		t.Errorf("KMeans.Clusters = %d, want 5", cfg.Recommend.Engine.KMeans.Clusters)
	}
	if cfg.Recommend.RefreshInterval != 2*time.Minute {
		t.Errorf("RefreshInterval = %v, want 2m", cfg.Recommend.RefreshInterval)
	}
	if cfg.Recommend.Engine.Mentor.Weights.Skills != 0.7 {
		t.Errorf("Mentor.Weights.Skills = %v, want 0.7", cfg.Recommend.Engine.Mentor.Weights.Skills)
	}
	if want := []string{"Zoom", "Phone"}; !reflect.DeepEqual(cfg.Recommend.Engine.Mentor.MeetingOptions, want) {
		t.Errorf("Mentor.MeetingOptions = %v, want %v", cfg.Recommend.Engine.Mentor.MeetingOptions, want)
	}
	if cfg.Breaker.Enabled {
		t.Error("Breaker.Enabled = true, want false")
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.Engine.PageRank.Damping != 0.85 {
		t.Errorf("PageRank.Damping = %v, want 0.85 (default)", cfg.Recommend.Engine.PageRank.Damping)
	}
}

// TestLoadWithKoanf_ConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	configContent := `
database:
  path: /tmp/test.duckdb
logging:
  level: warn
recommend:
  refresh_interval: 1h
  engine:
    kmeans:
      clusters: 6
    mentor:
      skills: [Go, Rust]
`
	configPath := filepath.Join(tmpDir, "settings.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/test.duckdb" {
		t.Errorf("Database.Path = %q, want /tmp/test.duckdb", cfg.Database.Path)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env overrides file)", cfg.Logging.Level)
	}
	if cfg.Recommend.RefreshInterval != time.Hour {
		t.Errorf("RefreshInterval = %v, want 1h", cfg.Recommend.RefreshInterval)
	}
	if cfg.Recommend.Engine.KMeans.Clusters != 6 {
		t.Errorf("KMeans.Clusters = %d, want 6", cfg.Recommend.Engine.KMeans.Clusters)
	}
	if want := []string{"Go", "Rust"}; !reflect.DeepEqual(cfg.Recommend.Engine.Mentor.Skills, want) {
		t.Errorf("Mentor.Skills = %v, want %v", cfg.Recommend.Engine.Mentor.Skills, want)
	}
}

// TestLoadWithKoanf_Invalid rejects values that fail validation.
func TestLoadWithKoanf_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("PAGERANK_DAMPING", "1.5")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "pagerank.damping") {
		t.Errorf("LoadWithKoanf() error = %q, want mention of pagerank.damping", err.Error())
	}
}
