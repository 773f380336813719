// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package foods

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/nutriproxy/internal/cache"
	"github.com/tomtom215/nutriproxy/internal/fatsecret"
	"github.com/tomtom215/nutriproxy/internal/logging"
	"github.com/tomtom215/nutriproxy/internal/models"
	"github.com/tomtom215/nutriproxy/internal/transform"
)

// SearchParams are the inputs of a food search. Zero MaxResults uses the
// vendor client's default page size.
type SearchParams struct {
	Query      string
	Page       int
	MaxResults int
}

// searchKey is hashed into the search cache key. Query is normalized so
// "Broccoli " and "broccoli" share an entry.
type searchKey struct {
	Query      string `json:"q"`
	Page       int    `json:"p"`
	MaxResults int    `json:"n"`
}

// Service answers food lookups from the cache store, falling back to the
// vendor API and normalizing its responses. Concurrent misses for the same
// search, food id or barcode share one vendor call.
type Service struct {
	api   fatsecret.API
	store *cache.Store
}

// NewService creates a Service.
func NewService(api fatsecret.API, store *cache.Store) *Service {
	return &Service{api: api, store: store}
}

// Search returns the normalized foods matching p.Query. The result is never
// nil; no matches yields an empty slice.
func (s *Service) Search(ctx context.Context, p SearchParams) ([]models.Food, error) {
	query := normalizeQuery(p.Query)
	key := cache.GenerateKey("search", searchKey{Query: strings.ToLower(query), Page: p.Page, MaxResults: p.MaxResults})

	foods, err := cache.Load(ctx, s.store, cache.NamespaceSearch, key, func(ctx context.Context) ([]models.Food, time.Duration, error) {
		resp, err := s.api.SearchFoods(ctx, fatsecret.SearchQuery{
			Expression: query,
			Page:       p.Page,
			MaxResults: p.MaxResults,
		})
		if err != nil {
			return nil, 0, err
		}
		foods := transform.FromSearchResponse(resp)
		logging.CtxDebug(ctx).Str("query", query).Int("results", len(foods)).Msg("Search fetched from vendor")
		return foods, 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return foods, nil
}

// Food returns the normalized detail of a food, scaled to 100 g.
func (s *Service) Food(ctx context.Context, id string) (models.Food, error) {
	id = strings.TrimSpace(id)

	food, err := cache.Load(ctx, s.store, cache.NamespaceDetail, id, func(ctx context.Context) (models.Food, time.Duration, error) {
		detail, err := s.api.GetFood(ctx, id)
		if err != nil {
			return models.Food{}, 0, err
		}
		food, err := transform.FromDetail(detail)
		if err != nil {
			return models.Food{}, 0, err
		}
		return food, 0, nil
	})
	if err != nil {
		return models.Food{}, fmt.Errorf("food %s: %w", id, err)
	}
	return food, nil
}

// Barcode resolves a scanned barcode to a food and returns its detail. The
// barcode is reduced to its digits and padded to GTIN-13 first.
func (s *Service) Barcode(ctx context.Context, raw string) (models.Food, error) {
	gtin, err := NormalizeBarcode(raw)
	if err != nil {
		return models.Food{}, err
	}

	id, err := cache.Load(ctx, s.store, cache.NamespaceBarcode, gtin, func(ctx context.Context) (string, time.Duration, error) {
		id, err := s.api.FindFoodIDForBarcode(ctx, gtin)
		return id, 0, err
	})
	if err != nil {
		return models.Food{}, fmt.Errorf("barcode %s: %w", gtin, err)
	}

	logging.CtxDebug(ctx).Str("barcode", gtin).Str("food_id", id).Msg("Barcode resolved")
	return s.Food(ctx, id)
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
