// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package supervisor runs the proxy's long-lived services under a suture v4
supervisor tree.

	nutriproxy
	├── maintenance-layer
	│   └── CacheJanitorService (every CACHE_CLEANUP_INTERVAL)
	└── api-layer
	    └── HTTPServerService

A failing service is restarted with backoff; failures in one layer do not
restart the other. Supervisor events go through sutureslog to the zerolog
logger (see logging.NewSlogLogger).

# Shutdown

main cancels the tree's context on SIGINT/SIGTERM. Each service gets
ShutdownTimeout to return; the HTTP server drains in-flight requests within
that window. UnstoppedServiceReport lists services that overran it.

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMaintenanceService(services.NewCacheJanitorService(store, cfg.Cache.CleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err := tree.Serve(ctx)
*/
package supervisor
