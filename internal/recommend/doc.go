// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package recommend holds the shared data model and configuration of the
// community platform's recommendation and matching core.
//
// # Architecture
//
// Two independent pipelines share the vector primitives in the algorithms
// subpackage:
//
//   - Events: feedback rows are turned into sparse feature vectors
//     (features), clustered with k-means (algorithms), and scored against a
//     user's preference vector (ranking).
//   - Mentors: profiles are encoded into weighted dense vectors (features),
//     linked into a similarity/like graph, ranked with personalized PageRank
//     and blended with cosine similarity (ranking).
//
// The explain subpackage produces structured explanation clauses for both,
// and the engine subpackage fetches snapshots from a DataProvider and runs
// the pipelines end to end.
//
// # Design Principles
//
//   - Deterministic: identical inputs produce identical outputs. Map
//     iteration never leaks into results; ids are ordered with SortIDs.
//   - Stateless: every tunable is passed explicitly through Config.
//   - Rebuilt per request: vectors and clusters are never persisted.
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	eng, err := engine.New(provider, cfg, logger)
//
//	ids, err := eng.RecommendEvents(ctx, userID, 5)
//	matches, err := eng.MentorMatches(ctx, userID, 3, nil)
package recommend
