// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package config provides centralized configuration management for Nutriproxy.

Configuration is layered with Koanf v2: built-in defaults, then an optional YAML
file, then environment variables. The result is validated once at startup and
treated as immutable afterwards.

# Configuration Sources

  - Defaults (defaultConfig)
  - YAML file: CONFIG_PATH, config.yaml, config.yml, /etc/nutriproxy/config.yaml
  - Environment variables (explicit mapping table; unknown variables are ignored)

# Environment Variables

FatSecret (FatSecretConfig):
  - FATSECRET_CLIENT_ID, FATSECRET_CLIENT_SECRET: client credentials
  - FATSECRET_TOKEN_URL, FATSECRET_API_URL: vendor endpoints
  - FATSECRET_SCOPE (default: basic), FATSECRET_BARCODE_SCOPE (default: basic barcode)
  - FATSECRET_TIMEOUT (default: 30s), FATSECRET_MAX_RESULTS (default: 25)
  - FATSECRET_RATE_LIMIT (default: 10/s), FATSECRET_RATE_BURST (default: 20)
  - TOKEN_SAFETY_MARGIN (default: 100s), TOKEN_DEFAULT_LIFETIME (default: 24h)

Cache (CacheConfig):
  - CACHE_SEARCH_TTL (default: 1h)
  - CACHE_DETAIL_TTL (default: 24h)
  - CACHE_BARCODE_TTL (default: 24h)
  - CACHE_CLEANUP_INTERVAL (default: 5m)

HTTP Server (ServerConfig):
  - PORT (default: 3000), HTTP_HOST (default: 0.0.0.0)
  - HTTP_TIMEOUT (default: 30s)
  - ENVIRONMENT: development or production

Security (SecurityConfig):
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER (default: false)

# Validation

Validate rejects malformed endpoints, non-positive TTLs and timeouts, and
out-of-range rate limits. Client credentials are required only when
ENVIRONMENT=production; in development the server starts without them and
token acquisition fails per request.
*/
package config
