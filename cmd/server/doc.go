// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

/*
Package main is the entry point for the Commonground server.

Commonground hosts the community recommendation and matching core: event
recommendations from feedback clustering and mentor matching from profile
similarity plus personalized PageRank. The process owns the DuckDB store,
keeps event cluster gauges fresh and exposes /metrics and /healthz.

# Application Architecture

	RootSupervisor ("commonground")
	├── ComputeSupervisor ("compute-layer")
	│   └── Cluster refresh (RECOMMEND_REFRESH_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── Observability HTTP server (METRICS_ENABLED=true)

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB with versioned migrations, optional sample seed
 4. Engine: optional circuit breaker around the store
 5. Supervisor tree: cluster refresh and HTTP listener

# Configuration

Commonly used environment variables:

	DUCKDB_PATH                 database file (default /data/commonground.duckdb)
	SEED_SAMPLE_DATA            load a sample community into an empty database
	HTTP_PORT                   observability port (default 9464)
	LOG_LEVEL, LOG_FORMAT       logging
	RECOMMEND_CLUSTERS          k-means cluster count
	RECOMMEND_REFRESH_INTERVAL  cluster refresh period, 0 disables
	BREAKER_ENABLED             circuit breaker around the store

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. Services get the server
shutdown timeout to stop, then the database is checkpointed and closed.
*/
package main
