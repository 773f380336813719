// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package metrics

import (
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Cache efficiency per namespace
// - Vendor API calls and OAuth token acquisition
// - Circuit breaker state

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "token", "search", "detail", "barcode"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries across all namespaces",
		},
	)

	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache entries removed by the janitor sweep",
		},
	)

	CacheLoadsCollapsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_loads_shared_total",
			Help: "Number of cache loads served by another in-flight load for the same key",
		},
		[]string{"cache_type"},
	)

	// Vendor API Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls to the nutrition vendor API",
		},
		[]string{"method", "result"}, // result: "success", "not_found", "error", "timeout", "network"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of nutrition vendor API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	TokenRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oauth_token_requests_total",
			Help: "Total number of client-credentials grant requests",
		},
		[]string{"scope", "result"},
	)

	TokenRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oauth_token_request_duration_seconds",
			Help:    "Duration of client-credentials grant requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup counts a hit or miss for the given cache namespace.
func RecordCacheLookup(namespace string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(namespace).Inc()
		return
	}
	CacheMisses.WithLabelValues(namespace).Inc()
}

// RecordCacheSweep records the outcome of a janitor sweep.
func RecordCacheSweep(evicted, remaining int) {
	CacheEvictions.Add(float64(evicted))
	CacheSize.Set(float64(remaining))
}

// RecordUpstreamCall records a vendor API call with its outcome.
func RecordUpstreamCall(method string, duration time.Duration, err error, notFound bool) {
	UpstreamRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	UpstreamRequestsTotal.WithLabelValues(method, upstreamResult(err, notFound)).Inc()
}

// RecordTokenRequest records a client-credentials grant attempt.
func RecordTokenRequest(scope string, duration time.Duration, err error) {
	TokenRequestDuration.Observe(duration.Seconds())
	result := "success"
	if err != nil {
		result = "failure"
	}
	TokenRequestsTotal.WithLabelValues(scope, result).Inc()
}

// SetAppInfo publishes the running version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// StatusLabel converts an HTTP status code to a metric label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}

func upstreamResult(err error, notFound bool) string {
	if notFound {
		return "not_found"
	}
	if err == nil {
		return "success"
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "timeout"
		}
		return "network"
	}
	return "error"
}
