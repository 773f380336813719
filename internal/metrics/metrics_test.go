// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package metrics

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful search",
			method:     "GET",
			endpoint:   "/api/food/search",
			statusCode: "200",
			duration:   25 * time.Millisecond,
		},
		{
			name:       "food not found",
			method:     "GET",
			endpoint:   "/api/food/{id}",
			statusCode: "404",
			duration:   5 * time.Millisecond,
		},
		{
			name:       "bad barcode",
			method:     "GET",
			endpoint:   "/api/food/barcode/{code}",
			statusCode: "400",
			duration:   time.Millisecond,
		},
		{
			name:       "upstream unavailable",
			method:     "GET",
			endpoint:   "/api/food/search",
			statusCode: "503",
			duration:   500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("api_requests_total delta = %v, want 1", after-before)
			}
		})
	}
}

// TestTrackActiveRequest_RequestLifecycle simulates realistic request lifecycle
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	for i := 0; i < 10; i++ {
		TrackActiveRequest(true)
	}
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 10 {
		t.Errorf("active requests = %v, want 10", got)
	}

	for i := 0; i < 10; i++ {
		TrackActiveRequest(false)
	}
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 0 {
		t.Errorf("active requests = %v, want 0", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("search"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("search"))

	RecordCacheLookup("search", true)
	RecordCacheLookup("search", false)
	RecordCacheLookup("search", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("search")) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("search")) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordCacheSweep(t *testing.T) {
	before := testutil.ToFloat64(CacheEvictions)
	RecordCacheSweep(3, 7)

	if got := testutil.ToFloat64(CacheEvictions) - before; got != 3 {
		t.Errorf("evictions delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(CacheSize); got != 7 {
		t.Errorf("cache size = %v, want 7", got)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestUpstreamResult(t *testing.T) {
	var _ net.Error = timeoutErr{}

	tests := []struct {
		name     string
		err      error
		notFound bool
		want     string
	}{
		{"success", nil, false, "success"},
		{"not found wins", errors.New("no match"), true, "not_found"},
		{"timeout", &net.OpError{Op: "dial", Err: timeoutErr{}}, false, "timeout"},
		{"plain error", errors.New("bad status"), false, "error"},
		{"context canceled", context.Canceled, false, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := upstreamResult(tt.err, tt.notFound); got != tt.want {
				t.Errorf("upstreamResult() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordUpstreamCall(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("foods.search", "success"))
	RecordUpstreamCall("foods.search", 40*time.Millisecond, nil, false)
	if got := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("foods.search", "success")) - before; got != 1 {
		t.Errorf("upstream success delta = %v, want 1", got)
	}
}

func TestRecordTokenRequest(t *testing.T) {
	ok := testutil.ToFloat64(TokenRequestsTotal.WithLabelValues("basic", "success"))
	failed := testutil.ToFloat64(TokenRequestsTotal.WithLabelValues("basic", "failure"))

	RecordTokenRequest("basic", 10*time.Millisecond, nil)
	RecordTokenRequest("basic", 10*time.Millisecond, errors.New("invalid_client"))

	if got := testutil.ToFloat64(TokenRequestsTotal.WithLabelValues("basic", "success")) - ok; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(TokenRequestsTotal.WithLabelValues("basic", "failure")) - failed; got != 1 {
		t.Errorf("failure delta = %v, want 1", got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "fatsecret_api"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}

	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()
	CircuitBreakerState.WithLabelValues(cbName).Set(0)
}

// TestConcurrentMetricRecording verifies metric helpers are safe for concurrent use
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			RecordAPIRequest("GET", "/api/status", StatusLabel(200), time.Millisecond)
			RecordCacheLookup("detail", i%2 == 0)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}(i)
	}
	wg.Wait()
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	SetAppInfo("test", "go1.25")

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
