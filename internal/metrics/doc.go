// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed by the observability HTTP service at /metrics.

# Available Metrics

Recommendation Metrics:
  - recommend_operation_duration_seconds: Operation latency (histogram)
    Labels: operation (event_vectors, cluster_events, recommend_events,
    explain_event, mentor_matches, explain_mentor)
  - recommend_operations_total: Operation outcomes (counter)
    Labels: operation, status (success, error, empty)
  - recommend_result_size: Items returned per operation (histogram)
  - recommend_kmeans_iterations: Rounds per k-means run (histogram)
  - recommend_kmeans_not_converged_total: Runs stopped by the cap (counter)
  - recommend_pagerank_iterations: Power iterations per run (histogram)
  - recommend_clusters, recommend_clustered_events: Last refresh shape (gauges)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
  - duckdb_rows_returned_total: Snapshot rows read (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result (counter)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)

HTTP Metrics:
  - http_requests_total, http_request_duration_seconds
    Labels: method, route, status

# Usage Example

	start := time.Now()
	ids, err := engine.RecommendEvents(ctx, userID, 5)
	metrics.RecordOperation("recommend_events", time.Since(start), len(ids), err)

# Testing

Tests read collector values with prometheus/testutil:

	before := testutil.ToFloat64(metrics.KMeansNotConverged)
	metrics.RecordKMeans(100, false)
	after := testutil.ToFloat64(metrics.KMeansNotConverged)
*/
package metrics
