// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for recorded operations.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusEmpty   = "empty"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBRowsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_rows_returned_total",
			Help: "Total number of rows returned by snapshot queries",
		},
		[]string{"table"},
	)

	// Recommendation Metrics
	RecommendOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_operation_duration_seconds",
			Help:    "Duration of recommendation and matching operations in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	RecommendOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_operations_total",
			Help: "Total number of recommendation and matching operations",
		},
		[]string{"operation", "status"}, // status: "success", "error", "empty"
	)

	RecommendResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_result_size",
			Help:    "Number of items returned per operation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"operation"},
	)

	KMeansIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_kmeans_iterations",
			Help:    "Assign/update rounds per k-means run",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100},
		},
	)

	KMeansNotConverged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_kmeans_not_converged_total",
			Help: "Total number of k-means runs stopped by the iteration cap",
		},
	)

	PageRankIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_pagerank_iterations",
			Help:    "Power iterations per personalized PageRank run",
			Buckets: []float64{1, 5, 10, 20, 30, 50, 75, 100},
		},
	)

	ClusterCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_clusters",
			Help: "Number of non-empty event clusters in the last refresh",
		},
	)

	ClusteredEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_clustered_events",
			Help: "Number of events clustered in the last refresh",
		},
	)

	ClusterRefreshLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cluster_refresh_last_success_timestamp",
			Help: "Unix timestamp of the last successful cluster refresh",
		},
	)

	// Observability HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "route"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordDBRows adds the number of rows a snapshot query returned.
func RecordDBRows(table string, n int) {
	DBRowsReturned.WithLabelValues(table).Add(float64(n))
}

// RecordOperation records the duration, outcome and result size of a
// recommendation operation. A nil error with zero results counts as "empty".
func RecordOperation(operation string, duration time.Duration, results int, err error) {
	RecommendOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())

	status := StatusSuccess
	switch {
	case err != nil:
		status = StatusError
	case results == 0:
		status = StatusEmpty
	}
	RecommendOperationsTotal.WithLabelValues(operation, status).Inc()

	if err == nil {
		RecommendResultSize.WithLabelValues(operation).Observe(float64(results))
	}
}

// RecordKMeans records the outcome of a clustering run.
func RecordKMeans(iterations int, converged bool) {
	KMeansIterations.Observe(float64(iterations))
	if !converged {
		KMeansNotConverged.Inc()
	}
}

// RecordPageRank records the number of power iterations of a PageRank run.
func RecordPageRank(iterations int) {
	PageRankIterations.Observe(float64(iterations))
}

// UpdateClusterGauges publishes the shape of the latest clustering.
func UpdateClusterGauges(clusters, events int) {
	ClusterCount.Set(float64(clusters))
	ClusteredEvents.Set(float64(events))
	ClusterRefreshLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordHTTPRequest records an HTTP request metric
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetAppInfo publishes the build information gauge.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// TrackUptime sets the uptime gauge from the process start time.
func TrackUptime(started time.Time) {
	AppUptime.Set(time.Since(started).Seconds())
}
