// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/nutriproxy/internal/fatsecret"
	"github.com/tomtom215/nutriproxy/internal/foods"
	"github.com/tomtom215/nutriproxy/internal/models"
	"github.com/tomtom215/nutriproxy/internal/transform"
	"github.com/tomtom215/nutriproxy/internal/validation"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validation.NewFieldError("query", "notblank", "", "query parameter is required"), http.StatusBadRequest, models.ErrCodeValidation},
		{"barcode", foods.ErrInvalidBarcode, http.StatusBadRequest, models.ErrCodeValidation},
		{"not found", fatsecret.ErrNotFound, http.StatusNotFound, models.ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("food.get.v2: %w", fatsecret.ErrNotFound), http.StatusNotFound, models.ErrCodeNotFound},
		{"no servings", transform.ErrNoServingData, http.StatusNotFound, models.ErrCodeNotFound},
		{"unavailable", fatsecret.ErrUnavailable, http.StatusServiceUnavailable, models.ErrCodeUpstreamUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, models.ErrCodeUpstreamUnavailable},
		{"upstream", &fatsecret.UpstreamError{StatusCode: 500}, http.StatusBadGateway, models.ErrCodeUpstream},
		{"upstream rate limited", &fatsecret.UpstreamError{StatusCode: 429}, http.StatusTooManyRequests, models.ErrCodeUpstream},
		{"token", fmt.Errorf("scope basic: %w", fatsecret.ErrTokenAcquisition), http.StatusInternalServerError, models.ErrCodeTokenAcquisition},
		{"malformed", fatsecret.ErrMalformedResponse, http.StatusInternalServerError, models.ErrCodeTransform},
		{"shape", transform.ErrUnexpectedShape, http.StatusInternalServerError, models.ErrCodeTransform},
		{"canceled", context.Canceled, statusClientClosedRequest, models.ErrCodeInternal},
		{"other", errors.New("boom"), http.StatusInternalServerError, models.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got.Status != tt.status || got.Code != tt.code {
				t.Errorf("classifyError(%v) = %d %s, want %d %s", tt.err, got.Status, got.Code, tt.status, tt.code)
			}
			if got.Message == "" {
				t.Error("Expected a client-facing message")
			}
		})
	}
}

func TestClassifyErrorHidesInternalDetail(t *testing.T) {
	got := classifyError(errors.New("dial tcp 10.0.0.1:443: secret internals"))
	if strings.Contains(got.Message, "10.0.0.1") {
		t.Errorf("message leaks internals: %q", got.Message)
	}
}

func TestClassifyUpstreamDetails(t *testing.T) {
	got := classifyError(&fatsecret.UpstreamError{StatusCode: 500, Message: "oops"})
	if got.Details["upstream_status"] != 500 {
		t.Errorf("details.upstream_status = %v, want 500", got.Details["upstream_status"])
	}
}
