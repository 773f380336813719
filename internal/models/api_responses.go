// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package models

import "time"

// Error codes returned in ErrorResponse.Code.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstream            = "UPSTREAM_ERROR"
	ErrCodeTokenAcquisition    = "TOKEN_ACQUISITION_FAILED"
	ErrCodeTransform           = "TRANSFORM_ERROR"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx API response.
//
// Example:
//
//	{
//	  "error": "query parameter is required",
//	  "code": "VALIDATION_ERROR",
//	  "details": {"field": "query"},
//	  "request_id": "5f0c6c1e-..."
//	}
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Uptime    string         `json:"uptime"`
	Cache     interface{}    `json:"cache,omitempty"`
	Upstream  UpstreamStatus `json:"upstream"`
	Endpoints interface{}    `json:"endpoints,omitempty"`
}

// UpstreamStatus describes the vendor connection as seen by this process.
type UpstreamStatus struct {
	CircuitBreaker string `json:"circuit_breaker"`
	Configured     bool   `json:"configured"`
}
