// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

/*
Package engine orchestrates the recommendation and matching pipelines.

An Engine reads complete snapshots from a DataProvider (feedback, events,
registrations, profiles and likes), runs the pure computations from the
features, algorithms, ranking and explain packages, and returns the results
the presentation layer renders:

  - EventVectors: event id to feature vector
  - ClusterEvents: cluster index to event ids, with the vectors used
  - RecommendEvents: ranked event ids for a user
  - ExplainEvent: structured explanation clauses for one event
  - MentorMatches: ranked mentors with score breakdowns
  - ExplainMentorMatch: structured explanation clauses for one mentor

# Errors

Provider failures are wrapped and returned without retries; the caller
decides the fallback. A user without feedback is not an error: it gets an
empty recommendation list. Unknown users and events yield ErrUserNotFound and
ErrEventNotFound.

# Concurrency

The engine holds only its configuration, which is copied at construction and
never modified. All methods are safe for concurrent use.

# Observability

Every call is tagged with a request id (reused from the context when present),
logged at debug level and recorded in the recommend_* Prometheus metrics.
*/
package engine
