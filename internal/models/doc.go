// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package models defines the data structures served by the Nutriproxy API.

Key Components:

  - Food: the normalized food record returned by search, detail and barcode lookups
  - Serving: an alternative serving of a food with its gram equivalent
  - ErrorResponse: the body of every error response
  - StatusResponse: the body of GET /api/status

Vendor wire formats live in the fatsecret subpackage; they are converted to
Food by the transform package and never leave the server.
*/
package models
