// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

/*
Package config loads and validates application configuration.

Configuration is layered with Koanf v2. Built-in defaults come first, then
an optional YAML file (CONFIG_PATH, or config.yaml in the working directory,
or /etc/commonground/config.yaml), then environment variables. Later layers
win.

# Sections

  - database: DuckDB path, memory limit, threads, sample data seeding
  - server: the observability listener serving /metrics and /healthz
  - logging: level, format, caller
  - recommend: refresh interval and the engine parameters (k-means, mentor
    weights and vocabularies, graph and PageRank constants, explanation
    thresholds, result limits)
  - breaker: circuit breaker around the store

# Environment Variables

Only mapped variables are read; anything else in the environment is ignored.
List settings accept comma-separated values.

	DUCKDB_PATH=/var/lib/commonground.duckdb
	LOG_LEVEL=debug
	RECOMMEND_CLUSTERS=4
	MENTOR_WEIGHT_SKILLS=0.5
	MENTOR_MEETING_OPTIONS=Zoom,In Person,Hybrid
	BREAKER_TIMEOUT=1m

# Example YAML

	database:
	  path: /data/commonground.duckdb
	recommend:
	  refresh_interval: 10m
	  engine:
	    kmeans:
	      clusters: 4
	    mentor:
	      weights:
	        skills: 0.5
	        interests: 0.2

# Validation

Struct tags are checked through the validation package, then the engine's
own cross-field rules. Mentor weights are only required to be non-negative;
they do not have to sum to 1.
*/
package config
