// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateFatSecret(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateFatSecret validates the vendor connection settings. Credentials are
// only mandatory in production; a development instance starts without them and
// reports token acquisition failures per request.
func (c *Config) validateFatSecret() error {
	if err := c.validateFatSecretCredentials(); err != nil {
		return err
	}
	if err := validateEndpointURL(c.FatSecret.TokenURL, "FATSECRET_TOKEN_URL"); err != nil {
		return err
	}
	if err := validateEndpointURL(c.FatSecret.APIURL, "FATSECRET_API_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.FatSecret.Scope) == "" {
		return fmt.Errorf("FATSECRET_SCOPE must not be empty")
	}
	if strings.TrimSpace(c.FatSecret.BarcodeScope) == "" {
		return fmt.Errorf("FATSECRET_BARCODE_SCOPE must not be empty")
	}
	if c.FatSecret.Timeout <= 0 {
		return fmt.Errorf("FATSECRET_TIMEOUT must be positive")
	}
	if c.FatSecret.MaxResults < minMaxResults || c.FatSecret.MaxResults > maxMaxResults {
		return fmt.Errorf("FATSECRET_MAX_RESULTS must be between %d and %d", minMaxResults, maxMaxResults)
	}
	return c.validateOutboundRateLimit()
}

// Vendor page size bounds
const (
	minMaxResults = 1
	maxMaxResults = 50
)

func (c *Config) validateFatSecretCredentials() error {
	if !c.IsProduction() {
		return nil
	}
	if c.FatSecret.ClientID == "" {
		return fmt.Errorf("FATSECRET_CLIENT_ID is required when ENVIRONMENT=production")
	}
	if c.FatSecret.ClientSecret == "" {
		return fmt.Errorf("FATSECRET_CLIENT_SECRET is required when ENVIRONMENT=production")
	}
	if containsPlaceholder(c.FatSecret.ClientSecret) {
		return fmt.Errorf("FATSECRET_CLIENT_SECRET appears to contain a placeholder value")
	}
	return nil
}

func (c *Config) validateOutboundRateLimit() error {
	if c.FatSecret.RateLimit < 0 {
		return fmt.Errorf("FATSECRET_RATE_LIMIT must not be negative")
	}
	if c.FatSecret.RateLimit > 0 && c.FatSecret.RateBurst < 1 {
		return fmt.Errorf("FATSECRET_RATE_BURST must be at least 1 when FATSECRET_RATE_LIMIT is set")
	}
	if c.FatSecret.TokenSafetyMargin < 0 {
		return fmt.Errorf("TOKEN_SAFETY_MARGIN must not be negative")
	}
	if c.FatSecret.DefaultTokenLifetime <= 0 {
		return fmt.Errorf("TOKEN_DEFAULT_LIFETIME must be positive")
	}
	return nil
}

// validateCache validates cache lifetimes. A zero TTL is rejected: disabling
// a namespace is not supported.
func (c *Config) validateCache() error {
	ttls := []struct {
		name  string
		value time.Duration
	}{
		{"CACHE_SEARCH_TTL", c.Cache.SearchTTL},
		{"CACHE_DETAIL_TTL", c.Cache.DetailTTL},
		{"CACHE_BARCODE_TTL", c.Cache.BarcodeTTL},
		{"CACHE_CLEANUP_INTERVAL", c.Cache.CleanupInterval},
	}
	for _, ttl := range ttls {
		if ttl.value <= 0 {
			return fmt.Errorf("%s must be positive", ttl.name)
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true when a production instance accepts any origin.
// The proxy has no user credentials to steal, so this is a warning rather than an error.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates inbound rate limiting bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if err := c.validateRateLimitRequests(); err != nil {
		return err
	}
	return c.validateRateLimitWindow()
}

// validateRateLimitRequests validates the rate limit requests value
func (c *Config) validateRateLimitRequests() error {
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	return nil
}

// validateRateLimitWindow validates the rate limit window value
func (c *Config) validateRateLimitWindow() error {
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
// Production mode is determined by the ENVIRONMENT environment variable.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_CLIENT_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns.
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
