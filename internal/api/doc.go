// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package api provides the HTTP REST API layer of the proxy.

Endpoints:

	GET /api/status                 service status, cache stats, breaker state
	GET /api/food/search?query=Q    normalized search results (array, maybe empty)
	GET /api/food/{id}              one food scaled to 100 g
	GET /api/food/barcode/{code}    food for a UPC/EAN barcode
	GET /healthz/live               liveness probe
	GET /metrics                    Prometheus exposition
	GET /swagger/*                  OpenAPI UI

Every /api/food route is rate limited per client IP (go-chi/httprate).

Error Handling:

Handlers never build error bodies themselves; they pass the error to
respondError, which maps it with classifyError:

	validation failure, barcode without digits   400 VALIDATION_ERROR
	fatsecret.ErrNotFound, transform.ErrNoServingData  404 NOT_FOUND
	fatsecret.ErrUnavailable (network, open circuit)   503 UPSTREAM_UNAVAILABLE
	*fatsecret.UpstreamError                      502 UPSTREAM_ERROR (429 kept)
	fatsecret.ErrTokenAcquisition                 500 TOKEN_ACQUISITION_FAILED
	decode and shape failures                     500 TRANSFORM_ERROR
	anything else                                 500 INTERNAL_ERROR

The body is always models.ErrorResponse with the request id attached.
*/
package api
