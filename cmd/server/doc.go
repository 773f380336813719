// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package main is the entry point for the Nutriproxy server.

Nutriproxy sits between browser or mobile clients and the FatSecret Platform
API. It holds the OAuth2 client credentials, caches tokens and results, and
returns a stable, normalized food schema.

# Application Architecture

	RootSupervisor ("nutriproxy")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache janitor (expired entry sweep)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Cache store: namespaced TTL cache shared by tokens and results
 4. Vendor client: token manager, rate limited client, circuit breaker
 5. Supervisor tree: Suture v4 process supervision
 6. HTTP Server: chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
  - Environment variables
  - Config file (config.yaml, or CONFIG_PATH)
  - Built-in defaults

Required in production:
  - FATSECRET_CLIENT_ID
  - FATSECRET_CLIENT_SECRET

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP service stops accepting
connections and drains in-flight requests for up to 10s.

# Example Usage

	export FATSECRET_CLIENT_ID=...
	export FATSECRET_CLIENT_SECRET=...
	export LOG_FORMAT=console
	./nutriproxy
*/
package main
