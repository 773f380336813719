// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"context"
	"time"

	"github.com/tomtom215/nutriproxy/internal/cache"
	"github.com/tomtom215/nutriproxy/internal/config"
	"github.com/tomtom215/nutriproxy/internal/foods"
	"github.com/tomtom215/nutriproxy/internal/middleware"
	"github.com/tomtom215/nutriproxy/internal/models"
)

// FoodService answers the food endpoints. *foods.Service implements it.
type FoodService interface {
	Search(ctx context.Context, p foods.SearchParams) ([]models.Food, error)
	Food(ctx context.Context, id string) (models.Food, error)
	Barcode(ctx context.Context, raw string) (models.Food, error)
}

// CacheStatsSource reports cache statistics for the status endpoint.
type CacheStatsSource interface {
	Stats() cache.StoreStats
}

// BreakerStateSource reports the vendor circuit breaker state.
type BreakerStateSource interface {
	State() string
}

// Handler handles all HTTP API requests.
type Handler struct {
	foods     FoodService
	cache     CacheStatsSource
	breaker   BreakerStateSource
	perfMon   *middleware.PerformanceMonitor
	config    *config.Config
	version   string
	startTime time.Time
}

// HandlerOption customises optional Handler dependencies.
type HandlerOption func(*Handler)

// WithCacheStats exposes cache statistics on /api/status.
func WithCacheStats(src CacheStatsSource) HandlerOption {
	return func(h *Handler) { h.cache = src }
}

// WithBreaker exposes the circuit breaker state on /api/status.
func WithBreaker(src BreakerStateSource) HandlerOption {
	return func(h *Handler) { h.breaker = src }
}

// WithPerformanceMonitor exposes per-route latency percentiles on /api/status.
func WithPerformanceMonitor(pm *middleware.PerformanceMonitor) HandlerOption {
	return func(h *Handler) { h.perfMon = pm }
}

// NewHandler creates a new Handler.
func NewHandler(svc FoodService, cfg *config.Config, version string, opts ...HandlerOption) *Handler {
	h := &Handler{
		foods:     svc,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// defaultMaxResults is the configured search page size, or the vendor default.
func (h *Handler) defaultMaxResults() int {
	if h.config != nil && h.config.FatSecret.MaxResults > 0 {
		return h.config.FatSecret.MaxResults
	}
	return 0
}
