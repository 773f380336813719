// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/nutriproxy/config.yaml",
	"/etc/nutriproxy/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Vendor endpoints and scopes used when nothing else is configured.
const (
	DefaultTokenURL     = "https://oauth.fatsecret.com/connect/token"
	DefaultAPIURL       = "https://platform.fatsecret.com/rest/server.api"
	DefaultScope        = "basic"
	DefaultBarcodeScope = "basic barcode"
)

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		FatSecret: FatSecretConfig{
			ClientID:             "",
			ClientSecret:         "",
			TokenURL:             DefaultTokenURL,
			APIURL:               DefaultAPIURL,
			Scope:                DefaultScope,
			BarcodeScope:         DefaultBarcodeScope,
			Timeout:              30 * time.Second,
			MaxResults:           25,
			RateLimit:            10,
			RateBurst:            20,
			TokenSafetyMargin:    100 * time.Second,
			DefaultTokenLifetime: 24 * time.Hour,
		},
		Cache: CacheConfig{
			SearchTTL:       time.Hour,
			DetailTTL:       24 * time.Hour,
			BarcodeTTL:      24 * time.Hour,
			CleanupInterval: 5 * time.Minute,
		},
		Server: ServerConfig{
			Port:        3000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Built-in defaults (lowest priority)
//  2. Config file (YAML)
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	return loadWithKoanf(findConfigFile())
}

func loadWithKoanf(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Env vars arrive as strings; split the comma-separated ones
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default locations.
// Returns empty string if no config file is found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"fatsecret_client_id":     "fatsecret.client_id",
	"fatsecret_client_secret": "fatsecret.client_secret",
	"fatsecret_token_url":     "fatsecret.token_url",
	"fatsecret_api_url":       "fatsecret.api_url",
	"fatsecret_scope":         "fatsecret.scope",
	"fatsecret_barcode_scope": "fatsecret.barcode_scope",
	"fatsecret_timeout":       "fatsecret.timeout",
	"fatsecret_max_results":   "fatsecret.max_results",
	"fatsecret_rate_limit":    "fatsecret.rate_limit",
	"fatsecret_rate_burst":    "fatsecret.rate_burst",
	"token_safety_margin":     "fatsecret.token_safety_margin",
	"token_default_lifetime":  "fatsecret.default_token_lifetime",

	"cache_search_ttl":       "cache.search_ttl",
	"cache_detail_ttl":       "cache.detail_ttl",
	"cache_barcode_ttl":      "cache.barcode_ttl",
	"cache_cleanup_interval": "cache.cleanup_interval",

	"port":         "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - FATSECRET_CLIENT_ID -> fatsecret.client_id
//   - TOKEN_SAFETY_MARGIN -> fatsecret.token_safety_margin
//   - PORT -> server.port
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
