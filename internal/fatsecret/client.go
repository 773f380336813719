// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/nutriproxy/internal/config"
	"github.com/tomtom215/nutriproxy/internal/logging"
	"github.com/tomtom215/nutriproxy/internal/metrics"
	fsmodels "github.com/tomtom215/nutriproxy/internal/models/fatsecret"
)

// Vendor API methods
const (
	MethodFoodsSearch      = "foods.search"
	MethodFoodGet          = "food.get.v2"
	MethodFindIDForBarcode = "food.find_id_for_barcode"
)

const (
	maxErrorBodySize    = 64 * 1024
	maxResponseBodySize = 8 << 20
	formContentType     = "application/x-www-form-urlencoded"

	// Message fragments the vendor uses for missing foods and barcodes
	notFoundMessageFragment = "not found"
	noMatchMessageFragment  = "no match"
)

// API is the set of vendor operations the proxy uses. It is implemented by
// Client and by CircuitBreakerClient.
type API interface {
	SearchFoods(ctx context.Context, q SearchQuery) (*fsmodels.SearchResponse, error)
	GetFood(ctx context.Context, foodID string) (*fsmodels.FoodDetail, error)
	FindFoodIDForBarcode(ctx context.Context, barcode string) (string, error)
}

// SearchQuery holds the parameters of foods.search. Zero MaxResults uses the
// configured default; Page is zero-based.
type SearchQuery struct {
	Expression string
	Page       int
	MaxResults int
}

// Client calls the FatSecret Platform API: a form-encoded POST to a single
// endpoint with the method name in the body and a bearer token per scope.
// Calls are paced by an outbound token-bucket limiter and are never retried.
type Client struct {
	apiURL     string
	httpClient *http.Client
	tokens     TokenProvider
	limiter    *rate.Limiter

	scope        string
	barcodeScope string
	maxResults   int
}

var _ API = (*Client)(nil)

// NewClient creates a vendor client. httpClient may be nil, in which case a
// client with the configured timeout is used.
func NewClient(cfg *config.FatSecretConfig, tokens TokenProvider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return &Client{
		apiURL:       cfg.APIURL,
		httpClient:   httpClient,
		tokens:       tokens,
		limiter:      limiter,
		scope:        cfg.Scope,
		barcodeScope: cfg.BarcodeScope,
		maxResults:   cfg.MaxResults,
	}
}

// SearchFoods runs foods.search. An empty result is not an error.
func (c *Client) SearchFoods(ctx context.Context, q SearchQuery) (*fsmodels.SearchResponse, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	params := url.Values{}
	params.Set("search_expression", q.Expression)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("page_number", strconv.Itoa(q.Page))

	var resp fsmodels.SearchResponse
	if err := c.call(ctx, MethodFoodsSearch, c.scope, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFood runs food.get.v2 for foodID. ErrNotFound is returned when the vendor
// does not know the id.
func (c *Client) GetFood(ctx context.Context, foodID string) (*fsmodels.FoodDetail, error) {
	params := url.Values{}
	params.Set("food_id", foodID)

	var resp fsmodels.FoodResponse
	if err := c.call(ctx, MethodFoodGet, c.scope, params, &resp); err != nil {
		return nil, err
	}
	if resp.Food == nil {
		return nil, fmt.Errorf("%w: food %s", ErrNotFound, foodID)
	}
	return resp.Food, nil
}

// FindFoodIDForBarcode resolves a GTIN-13 barcode to a food id using the
// barcode scope. ErrNotFound is returned when the barcode is unknown.
func (c *Client) FindFoodIDForBarcode(ctx context.Context, barcode string) (string, error) {
	params := url.Values{}
	params.Set("barcode", barcode)

	var resp fsmodels.BarcodeResponse
	if err := c.call(ctx, MethodFindIDForBarcode, c.barcodeScope, params, &resp); err != nil {
		return "", err
	}
	if !resp.FoodID.Found() {
		return "", fmt.Errorf("%w: barcode %s", ErrNotFound, barcode)
	}
	return string(resp.FoodID), nil
}

// call performs one vendor request and decodes the body into out. The vendor
// error envelope is checked before out is decoded because it may arrive with
// HTTP 200.
func (c *Client) call(ctx context.Context, method, scope string, params url.Values, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordUpstreamCall(method, time.Since(start), err, errors.Is(err, ErrNotFound))
	}()

	token, err := c.tokens.Token(ctx, scope)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limiter: %w", method, err)
	}

	params.Set("method", method)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		uerr := &UpstreamError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Message:    string(readBodyForError(resp.Body)),
		}
		if uerr.Unauthorized() {
			c.tokens.Invalidate(scope)
		}
		if resp.StatusCode == http.StatusNotFound || isNotFoundMessage(uerr.Message) {
			return fmt.Errorf("%w: %w", ErrNotFound, uerr)
		}
		logging.CtxWarn(ctx).
			Str("method", method).
			Int("status", resp.StatusCode).
			Str("body", logging.SanitizeBody(uerr.Message)).
			Msg("Vendor request failed")
		return uerr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: reading body: %w", ErrUnavailable, method, err)
	}

	var envelope struct {
		Error *fsmodels.APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, method, err)
	}
	if envelope.Error != nil {
		return c.envelopeError(ctx, method, scope, resp.StatusCode, envelope.Error)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, method, err)
	}
	return nil
}

// envelopeError maps a vendor error envelope to the package errors.
func (c *Client) envelopeError(ctx context.Context, method, scope string, status int, apiErr *fsmodels.APIError) error {
	code := int(apiErr.Code)

	switch {
	case code == fsmodels.ErrorCodeInvalidID,
		code == fsmodels.ErrorCodeNoBarcodeMatch,
		isNotFoundMessage(apiErr.Message):
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)

	case code == fsmodels.ErrorCodeInvalidToken, code == fsmodels.ErrorCodeExpiredToken:
		c.tokens.Invalidate(scope)
		logging.CtxWarn(ctx).Str("method", method).Int("vendor_code", code).Msg("Vendor rejected access token")
	}

	return &UpstreamError{
		Method:     method,
		StatusCode: status,
		Code:       code,
		Message:    apiErr.Message,
	}
}

func isNotFoundMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, notFoundMessageFragment) || strings.Contains(msg, noMatchMessageFragment)
}

// readBodyForError reads a response body for error reporting, limited to
// maxErrorBodySize bytes.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
