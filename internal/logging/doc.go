// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package logging provides the zerolog-based logger used across the process.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("server starting")
//	logging.Ctx(ctx).Debug().Str("user_id", id).Msg("recommending events")
//
// # Request IDs
//
// Every engine operation runs under a request ID. Callers may supply one with
// ContextWithRequestID; otherwise EnsureRequestID generates a UUID. Ctx adds
// request_id and correlation_id fields to every log line written through it.
//
// # slog Bridge
//
// SlogHandler forwards log/slog records to zerolog so libraries that only
// speak slog (sutureslog for the supervisor tree) share the same output.
//
// # Configuration
//
// Level, format and caller reporting come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
package logging
