// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/nutriproxy/internal/models"
)

// breakerUnknown is reported when no circuit breaker is wired in.
const breakerUnknown = "unknown"

// Status handles status requests. It never calls the vendor.
//
// @Summary Get proxy status
// @Description Returns service status, uptime, cache statistics, circuit breaker state and per-route latency percentiles.
// @Tags Core
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /api/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status := models.StatusResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Upstream: models.UpstreamStatus{
			CircuitBreaker: breakerUnknown,
			Configured:     h.config != nil && h.config.FatSecret.HasCredentials(),
		},
	}
	if h.cache != nil {
		status.Cache = h.cache.Stats()
	}
	if h.breaker != nil {
		status.Upstream.CircuitBreaker = h.breaker.State()
	}
	if h.perfMon != nil {
		status.Endpoints = h.perfMon.Stats()
	}

	respondUncached(w, http.StatusOK, status)
}

// HealthLive handles Kubernetes liveness probe requests
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 while the process is serving requests. Does not check the vendor.
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"alive"}`))
}
