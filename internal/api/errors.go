// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/nutriproxy/internal/fatsecret"
	"github.com/tomtom215/nutriproxy/internal/foods"
	"github.com/tomtom215/nutriproxy/internal/models"
	"github.com/tomtom215/nutriproxy/internal/transform"
	"github.com/tomtom215/nutriproxy/internal/validation"
)

// statusClientClosedRequest is the non-standard status logged (never sent)
// when the client went away before the response was ready.
const statusClientClosedRequest = 499

// apiError is the HTTP rendering of an error: status, code and the message
// shown to the client.
type apiError struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}
}

// classifyError maps service errors to HTTP responses. Messages for 5xx
// responses are generic; the cause is logged, not returned.
func classifyError(err error) apiError {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		resp := verr.ToErrorResponse()
		return apiError{http.StatusBadRequest, resp.Code, resp.Error, resp.Details}
	}

	var upstream *fatsecret.UpstreamError

	switch {
	case errors.Is(err, foods.ErrInvalidBarcode):
		return apiError{Status: http.StatusBadRequest, Code: models.ErrCodeValidation, Message: "Barcode must contain at least one digit"}

	case errors.Is(err, fatsecret.ErrNotFound):
		return apiError{Status: http.StatusNotFound, Code: models.ErrCodeNotFound, Message: "Food not found"}

	case errors.Is(err, transform.ErrNoServingData):
		return apiError{Status: http.StatusNotFound, Code: models.ErrCodeNotFound, Message: "Food has no serving data"}

	case errors.Is(err, context.Canceled):
		return apiError{Status: statusClientClosedRequest, Code: models.ErrCodeInternal, Message: "Request canceled"}

	case errors.Is(err, fatsecret.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return apiError{Status: http.StatusServiceUnavailable, Code: models.ErrCodeUpstreamUnavailable, Message: "Nutrition data provider is unavailable"}

	case errors.Is(err, fatsecret.ErrTokenAcquisition):
		return apiError{Status: http.StatusInternalServerError, Code: models.ErrCodeTokenAcquisition, Message: "Failed to authenticate with nutrition data provider"}

	case errors.Is(err, fatsecret.ErrMalformedResponse), errors.Is(err, transform.ErrUnexpectedShape):
		return apiError{Status: http.StatusInternalServerError, Code: models.ErrCodeTransform, Message: "Unexpected response from nutrition data provider"}

	case errors.As(err, &upstream):
		if upstream.RateLimited() {
			return apiError{Status: http.StatusTooManyRequests, Code: models.ErrCodeUpstream, Message: "Nutrition data provider rate limit exceeded"}
		}
		return apiError{
			Status:  http.StatusBadGateway,
			Code:    models.ErrCodeUpstream,
			Message: "Nutrition data provider returned an error",
			Details: map[string]interface{}{"upstream_status": upstream.StatusCode},
		}
	}

	return apiError{Status: http.StatusInternalServerError, Code: models.ErrCodeInternal, Message: "Internal server error"}
}
