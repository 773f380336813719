// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/nutriproxy/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged
// at warn level regardless of status.
const DefaultSlowRequestThreshold = time.Second

// AccessLog writes one structured entry per request: debug for 2xx/3xx,
// info for 4xx, warn for 5xx and for requests slower than slow. A
// non-positive slow disables the latency check.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrapWriter(w, r)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			status := statusOf(ww)

			logger := logging.Ctx(r.Context())
			logger.WithLevel(accessLevel(status, duration, slow)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", RoutePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP request")
		})
	}
}

func accessLevel(status int, duration, slow time.Duration) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.WarnLevel
	case slow > 0 && duration > slow:
		return zerolog.WarnLevel
	case status >= http.StatusBadRequest:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
