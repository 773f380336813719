// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// @title Nutriproxy API
// @version 1.0
// @description Caching proxy that normalizes FatSecret nutrition data. The vendor credentials never leave the server.
// @description
// @description ## Rate Limiting
// @description
// @description Food endpoints allow 100 requests per minute per IP address by default.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": "query parameter is required",
// @description   "code": "VALIDATION_ERROR",
// @description   "details": {"field": "query"},
// @description   "request_id": "5f0c6c1e-..."
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/nutriproxy/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service status and health probes
//
// @tag.name Foods
// @tag.description Normalized food search, detail and barcode lookups
package main
