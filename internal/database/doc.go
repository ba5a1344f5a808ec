// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package database stores the community data the recommendation engine
// reads: the event catalog, feedback, registrations, member profiles and
// likes.
//
// # Overview
//
// DB is a DuckDB-backed store that implements engine.DataProvider. Every read
// returns a full, ordered snapshot of one table; the engine builds its feature
// vectors and graphs from those snapshots on each call.
//
// # Architecture
//
//   - database.go: lifecycle (open, initialize, checkpoint on close)
//   - database_connection.go: pool configuration and error classification
//   - database_schema.go: base tables
//   - migrations.go: versioned migrations tracked in schema_migrations
//   - database_utils.go: context timeouts, checkpoints, record counts
//   - events.go, feedback.go, profiles.go: table access
//   - seed.go: optional sample community for demos
//   - breaker.go: circuit breaker around any engine.DataProvider
//
// # Storage Format
//
// Feedback reasons, profile skills and profile interests are stored as JSON
// text. Feedback is keyed by (user_id, event_id), so a later verdict replaces
// an earlier one.
//
// # Circuit Breaker
//
// CircuitBreakerStore trips after a configurable failure ratio and returns
// ErrCircuitOpen until the timeout elapses, keeping a failing database from
// stalling every recommendation request. State is exported through the
// circuit breaker metrics.
//
// # Thread Safety
//
// DB and CircuitBreakerStore are safe for concurrent use.
package database
