// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the vendor reports that the requested food
	// or barcode does not exist.
	ErrNotFound = errors.New("food not found")

	// ErrUnavailable is returned when the vendor cannot be reached or the
	// circuit breaker is open.
	ErrUnavailable = errors.New("nutrition provider unavailable")

	// ErrTokenAcquisition is returned when no access token could be obtained.
	ErrTokenAcquisition = errors.New("failed to acquire access token")

	// ErrMalformedResponse is returned when a vendor body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed vendor response")
)

// UpstreamError is a vendor failure with a status code or an error envelope.
type UpstreamError struct {
	Method     string
	StatusCode int
	Code       int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: vendor error %d (HTTP %d): %s", e.Method, e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: vendor returned HTTP %d: %s", e.Method, e.StatusCode, e.Message)
}

// RateLimited reports whether the vendor rejected the call for exceeding its quota.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Unauthorized reports whether the vendor rejected the access token.
func (e *UpstreamError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
