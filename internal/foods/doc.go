// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// Package foods orchestrates food lookups: cache store, then vendor client,
// then transform, then cache store again.
//
// Search results are cached per (query, page, max results), food details per
// id and barcode resolutions per GTIN-13. Errors are never cached.
package foods
