// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults for every setting
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: override any setting
//
// The configuration is loaded once at startup and is not modified afterwards.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal().Err(err).Msg("Failed to load config")
//	}
//	addr := cfg.Server.Addr()
type Config struct {
	FatSecret FatSecretConfig `koanf:"fatsecret"`
	Cache     CacheConfig     `koanf:"cache"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// FatSecretConfig holds the vendor API connection and OAuth2 client-credentials settings.
//
// Environment Variables:
//   - FATSECRET_CLIENT_ID: OAuth2 client id (required in production)
//   - FATSECRET_CLIENT_SECRET: OAuth2 client secret (required in production)
//   - FATSECRET_TOKEN_URL: token endpoint (default: https://oauth.fatsecret.com/connect/token)
//   - FATSECRET_API_URL: data endpoint (default: https://platform.fatsecret.com/rest/server.api)
//   - FATSECRET_SCOPE: scope for search and detail calls (default: basic)
//   - FATSECRET_BARCODE_SCOPE: scope for barcode lookups (default: "basic barcode")
//   - FATSECRET_TIMEOUT: outbound HTTP timeout (default: 30s)
//   - FATSECRET_MAX_RESULTS: default page size for searches (default: 25)
//   - FATSECRET_RATE_LIMIT: outbound requests per second, 0 disables (default: 10)
//   - FATSECRET_RATE_BURST: outbound burst size (default: 20)
//   - TOKEN_SAFETY_MARGIN: refresh tokens this long before they expire (default: 100s)
//   - TOKEN_DEFAULT_LIFETIME: lifetime assumed when the grant omits expires_in (default: 24h)
type FatSecretConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	TokenURL     string `koanf:"token_url"`
	APIURL       string `koanf:"api_url"`

	Scope        string `koanf:"scope"`
	BarcodeScope string `koanf:"barcode_scope"`

	Timeout    time.Duration `koanf:"timeout"`
	MaxResults int           `koanf:"max_results"`

	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	TokenSafetyMargin    time.Duration `koanf:"token_safety_margin"`
	DefaultTokenLifetime time.Duration `koanf:"default_token_lifetime"`
}

// HasCredentials reports whether both halves of the client credentials are set.
func (c *FatSecretConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// CacheConfig holds per-namespace cache lifetimes.
//
// Environment Variables:
//   - CACHE_SEARCH_TTL: search result lifetime (default: 1h)
//   - CACHE_DETAIL_TTL: food detail lifetime (default: 24h)
//   - CACHE_BARCODE_TTL: barcode to food id lifetime (default: 24h)
//   - CACHE_CLEANUP_INTERVAL: expired entry sweep interval (default: 5m)
type CacheConfig struct {
	SearchTTL       time.Duration `koanf:"search_ttl"`
	DetailTTL       time.Duration `koanf:"detail_ttl"`
	BarcodeTTL      time.Duration `koanf:"barcode_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// Addr returns the listen address in host:port form.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and inbound rate limiting settings.
// The proxy has no user authentication; the vendor credentials never leave the server.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: Minimum log level (trace, debug, info, warn, error) (default: info)
//   - LOG_FORMAT: Output format (json, console) (default: json)
//   - LOG_CALLER: Include caller file:line in logs (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources with the following precedence
// (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if it exists, or the path in CONFIG_PATH)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
