// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Inbound rate limit rejections (counter)

Cache Metrics:
  - cache_hits_total / cache_misses_total: Lookups per namespace (counter)
    Labels: cache_type (token, search, detail, barcode)
  - cache_loads_shared_total: Loads collapsed onto an in-flight load (counter)
  - cache_entries: Entries after the last janitor sweep (gauge)
  - cache_evictions_total: Entries removed by the janitor (counter)

Vendor Metrics:
  - upstream_requests_total: Vendor API calls (counter)
    Labels: method, result
  - upstream_request_duration_seconds: Vendor API latency (histogram)
  - oauth_token_requests_total: Client-credentials grants (counter)
    Labels: scope, result

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total, circuit_breaker_consecutive_failures,
    circuit_breaker_state_transitions_total
*/
package metrics
