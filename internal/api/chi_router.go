// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/nutriproxy/internal/middleware"
	"github.com/tomtom215/nutriproxy/internal/models"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates a Router. perfMon may be nil.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, perfMon *middleware.PerformanceMonitor) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
		perfMon:       perfMon,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Order matters: the request id must exist before anything logs, and the
	// metrics middlewares read the route pattern after routing completes.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
	if router.perfMon != nil {
		r.Use(router.perfMon.Middleware)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Get("/healthz/live", router.handler.HealthLive)

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		r.Get("/status", router.handler.Status)

		// Food lookups reach the vendor on cache misses; limit them per client.
		r.Route("/food", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/search", router.handler.SearchFoods)
			r.Get("/barcode/{code}", router.handler.GetFoodByBarcode)
			r.Get("/{id}", router.handler.GetFood)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, &models.ErrorResponse{
		Error: "Route not found",
		Code:  models.ErrCodeNotFound,
	})
}

func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, &models.ErrorResponse{
		Error: "Method not allowed",
		Code:  models.ErrCodeValidation,
	})
}
