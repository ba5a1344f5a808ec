// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

/*
Package services provides suture.Service wrappers for the server's long-lived
components.

Each wrapper implements suture's Service interface and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Serves the router from NewRouter: /metrics (Prometheus) and /healthz

Cluster Refresh (ClusterService):
  - Reclusters the event catalog on an interval
  - Publishes cluster count and clustered event gauges
  - Keeps the latest result in memory; recommendations never read it

# Error Handling

Serve returns ctx.Err() on graceful shutdown. Start-up failures (for example
a port already in use) are returned so suture can restart the service with
backoff. A failed clustering pass is logged and retried on the next tick.
*/
package services
