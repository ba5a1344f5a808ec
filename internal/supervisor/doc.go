// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

/*
Package supervisor runs the long-lived parts of the server under suture v4.

# Overview

	RootSupervisor ("commonground")
	├── ComputeSupervisor ("compute-layer")
	│   └── ClusterService (if recommend.refresh_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (if server.enabled)

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, bridged into zerolog by logging.NewSlogLogger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddComputeService(services.NewClusterService(eng, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)
*/
package supervisor
