// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/nutriproxy/internal/foods"
	"github.com/tomtom215/nutriproxy/internal/validation"
)

// SearchFoods handles food search requests
//
// @Summary Search foods
// @Description Searches the nutrition database and returns normalized foods. Results are cached per query, page and page size.
// @Tags Foods
// @Produce json
// @Param query query string true "Search expression"
// @Param page query int false "Zero-based page number" default(0)
// @Param max_results query int false "Results per page (max 50)" default(25)
// @Success 200 {array} models.Food "Matching foods (empty when none match)"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid parameters"
// @Failure 502 {object} models.ErrorResponse "Vendor returned an error"
// @Failure 503 {object} models.ErrorResponse "Vendor unreachable"
// @Router /api/food/search [get]
func (h *Handler) SearchFoods(w http.ResponseWriter, r *http.Request) {
	page, err := getIntParam(r, "page", 0)
	if err != nil {
		respondError(w, r, err)
		return
	}
	maxResults, err := getIntParam(r, "max_results", h.defaultMaxResults())
	if err != nil {
		respondError(w, r, err)
		return
	}

	req := validation.SearchRequest{
		Query:      r.URL.Query().Get("query"),
		Page:       page,
		MaxResults: maxResults,
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, r, verr)
		return
	}

	results, err := h.foods.Search(r.Context(), foods.SearchParams{
		Query:      req.Query,
		Page:       req.Page,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetFood handles food detail requests
//
// @Summary Get food by id
// @Description Returns one normalized food with nutrients scaled to 100 g of its first serving.
// @Tags Foods
// @Produce json
// @Param id path string true "Vendor food id"
// @Success 200 {object} models.Food
// @Failure 404 {object} models.ErrorResponse "No such food, or food without serving data"
// @Failure 502 {object} models.ErrorResponse "Vendor returned an error"
// @Failure 503 {object} models.ErrorResponse "Vendor unreachable"
// @Router /api/food/{id} [get]
func (h *Handler) GetFood(w http.ResponseWriter, r *http.Request) {
	req := validation.FoodRequest{ID: chi.URLParam(r, "id")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, r, verr)
		return
	}

	food, err := h.foods.Food(r.Context(), req.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, food)
}

// GetFoodByBarcode handles barcode lookups
//
// @Summary Get food by barcode
// @Description Resolves a UPC/EAN barcode to a food. Non-digits are stripped and the code is zero-padded to GTIN-13.
// @Tags Foods
// @Produce json
// @Param code path string true "UPC-A, EAN-8 or EAN-13 barcode"
// @Success 200 {object} models.Food
// @Failure 400 {object} models.ErrorResponse "Barcode without digits"
// @Failure 404 {object} models.ErrorResponse "Barcode not resolved"
// @Failure 502 {object} models.ErrorResponse "Vendor returned an error"
// @Failure 503 {object} models.ErrorResponse "Vendor unreachable"
// @Router /api/food/barcode/{code} [get]
func (h *Handler) GetFoodByBarcode(w http.ResponseWriter, r *http.Request) {
	req := validation.BarcodeRequest{Code: chi.URLParam(r, "code")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, r, verr)
		return
	}

	food, err := h.foods.Barcode(r.Context(), req.Code)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, food)
}
