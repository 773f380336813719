// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package middleware provides the HTTP middleware of the proxy.

Key Components:

  - RequestID: reuses or generates X-Request-ID and stores it for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern
  - AccessLog: one zerolog entry per request, level chosen by status and latency
  - PerformanceMonitor: sliding-window latency percentiles per route, reported
    by GET /api/status

Middleware Stack:

The router installs them in this order, outermost first:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)
	r.Use(chimiddleware.Recoverer)

Route patterns are read after the inner handler returns, when chi has
finished matching.
*/
package middleware
