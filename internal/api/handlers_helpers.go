// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nutriproxy/internal/logging"
	"github.com/tomtom215/nutriproxy/internal/models"
	"github.com/tomtom215/nutriproxy/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON marshals v and writes it with status. Successful responses
// carry an ETag and a short public cache lifetime; errors are never cached.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	writeJSON(w, status, v, status < http.StatusBadRequest)
}

// respondUncached writes v as JSON with Cache-Control: no-store whatever the
// status. Used for live views such as the status endpoint.
func respondUncached(w http.ResponseWriter, status int, v interface{}) {
	writeJSON(w, status, v, false)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}, cacheable bool) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")
	if cacheable {
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Header().Set("ETag", generateETag(data))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// writeError writes the error body with the request id attached.
func writeError(w http.ResponseWriter, r *http.Request, status int, resp *models.ErrorResponse) {
	resp.RequestID = logging.RequestIDFromContext(r.Context())
	respondJSON(w, status, resp)
}

// respondError classifies err, logs it and writes the matching error body.
// Client errors log at debug, server errors at error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := classifyError(err)

	event := logging.CtxDebug(r.Context())
	if apiErr.Status >= http.StatusInternalServerError {
		event = logging.CtxError(r.Context())
	}
	event.
		Str("code", apiErr.Code).
		Int("status", apiErr.Status).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("API error")

	if apiErr.Status == statusClientClosedRequest {
		// Nobody is listening; record the status for metrics only.
		w.WriteHeader(apiErr.Status)
		return
	}

	writeError(w, r, apiErr.Status, &models.ErrorResponse{
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		Details: apiErr.Details,
	})
}

// getIntParam parses an optional integer query parameter. Absent or empty
// values yield def; anything non-numeric is a validation error.
func getIntParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewFieldError(name, "numeric", raw, name+" must be an integer")
	}
	return v, nil
}
