// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package validation

// SearchRequest holds the query parameters of GET /api/food/search.
// MaxResults zero means "use the configured default"; the vendor accepts at
// most 50 per page.
type SearchRequest struct {
	Query      string `query:"query" validate:"notblank,max=200"`
	Page       int    `query:"page" validate:"gte=0,lte=10000"`
	MaxResults int    `query:"max_results" validate:"gte=0,lte=50"`
}

// FoodRequest holds the path parameter of GET /api/food/{id}.
type FoodRequest struct {
	ID string `param:"id" validate:"notblank,max=64"`
}

// BarcodeRequest holds the path parameter of GET /api/food/barcode/{code}.
// Digit extraction happens in the foods service.
type BarcodeRequest struct {
	Code string `param:"code" validate:"notblank,max=64"`
}
