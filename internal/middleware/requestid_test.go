// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	var capturedID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/food/search?query=egg", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID is not a valid UUID: %v", err)
	}
	if capturedID != responseID {
		t.Errorf("Context ID %q does not match response header %q", capturedID, responseID)
	}
}

func TestRequestID_ReusesUpstreamID(t *testing.T) {
	var capturedID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set(RequestIDHeader, "edge-7f3a-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if capturedID != "edge-7f3a-42" {
		t.Errorf("Expected upstream ID in context, got %q", capturedID)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "edge-7f3a-42" {
		t.Errorf("Expected upstream ID echoed, got %q", got)
	}
}

func TestRequestID_RejectsMalformedUpstreamID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"control characters", "abc\ndef"},
		{"spaces", "two words"},
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.id)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == tt.id {
				t.Errorf("Malformed ID %q should have been replaced", tt.id)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("Replacement ID is not a UUID: %v", err)
			}
		})
	}
}
