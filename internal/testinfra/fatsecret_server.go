// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nutriproxy/internal/config"
	"github.com/tomtom215/nutriproxy/internal/fatsecret"
)

// Paths served by MockFatSecretServer.
const (
	TokenPath = "/connect/token"
	APIPath   = "/rest/server.api"
)

// Vendor error codes the mock answers with.
const (
	vendorCodeInvalidID = 106
	vendorCodeNoMatch   = 211
)

// VendorCapture is one request received by the mock.
type VendorCapture struct {
	Path   string
	Method string // vendor method for data calls, "" for token grants
	Scope  string // requested scope for token grants
	Auth   string
	Form   map[string]string
}

// MockFatSecretServer is an in-process vendor. Foods, barcodes and search
// results are registered up front; anything unknown is answered with the
// vendor's not-found error envelope.
type MockFatSecretServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	captures []VendorCapture
	foods    map[string]json.RawMessage
	barcodes map[string]string
	searches map[string]json.RawMessage
	override http.HandlerFunc
}

// NewMockFatSecretServer starts the mock and stops it when t finishes.
func NewMockFatSecretServer(t *testing.T) *MockFatSecretServer {
	t.Helper()

	m := &MockFatSecretServer{
		foods:    make(map[string]json.RawMessage),
		barcodes: make(map[string]string),
		searches: make(map[string]json.RawMessage),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(TokenPath, m.handleToken)
	mux.HandleFunc(APIPath, m.handleAPI)
	m.Server = httptest.NewServer(mux)
	t.Cleanup(m.Server.Close)

	return m
}

// Config returns vendor settings pointing at the mock.
func (m *MockFatSecretServer) Config() *config.FatSecretConfig {
	return &config.FatSecretConfig{
		ClientID:             "mock-client-id",
		ClientSecret:         "mock-client-secret",
		TokenURL:             m.Server.URL + TokenPath,
		APIURL:               m.Server.URL + APIPath,
		Scope:                config.DefaultScope,
		BarcodeScope:         config.DefaultBarcodeScope,
		Timeout:              5 * time.Second,
		MaxResults:           25,
		TokenSafetyMargin:    100 * time.Second,
		DefaultTokenLifetime: 24 * time.Hour,
	}
}

// Client returns an HTTP client that trusts the mock.
func (m *MockFatSecretServer) Client() *http.Client {
	return m.Server.Client()
}

// AddFood registers a food.get.v2 "food" object. The id is read from its
// food_id field.
func (m *MockFatSecretServer) AddFood(foodJSON string) {
	var head struct {
		FoodID string `json:"food_id"`
	}
	if err := json.Unmarshal([]byte(foodJSON), &head); err != nil {
		panic("testinfra: invalid food fixture: " + err.Error())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.foods[head.FoodID] = json.RawMessage(foodJSON)
}

// AddBarcode maps a GTIN-13 barcode to a food id.
func (m *MockFatSecretServer) AddBarcode(gtin13, foodID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.barcodes[gtin13] = foodID
}

// AddSearch registers the "foods" object returned for a search expression.
// Expressions match case-insensitively.
func (m *MockFatSecretServer) AddSearch(expression, foodsJSON string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches[strings.ToLower(expression)] = json.RawMessage(foodsJSON)
}

// SetResponseFunc makes fn answer every data call instead of the fixtures.
// Token grants are unaffected. A nil fn restores the fixtures.
func (m *MockFatSecretServer) SetResponseFunc(fn http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.override = fn
}

// Captures returns a copy of every request received so far.
func (m *MockFatSecretServer) Captures() []VendorCapture {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]VendorCapture, len(m.captures))
	copy(out, m.captures)
	return out
}

// Calls counts data calls for a vendor method.
func (m *MockFatSecretServer) Calls(method string) int {
	n := 0
	for _, c := range m.Captures() {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Grants counts token grants, optionally filtered by scope ("" for all).
func (m *MockFatSecretServer) Grants(scope string) int {
	n := 0
	for _, c := range m.Captures() {
		if c.Path == TokenPath && (scope == "" || c.Scope == scope) {
			n++
		}
	}
	return n
}

func (m *MockFatSecretServer) capture(r *http.Request, method, scope string) {
	form := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		form[k] = r.PostForm.Get(k)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.captures = append(m.captures, VendorCapture{
		Path:   r.URL.Path,
		Method: method,
		Scope:  scope,
		Auth:   r.Header.Get("Authorization"),
		Form:   form,
	})
}

func (m *MockFatSecretServer) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	scope := r.PostForm.Get("scope")
	m.capture(r, "", scope)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": "mock-token-" + strings.ReplaceAll(scope, " ", "-"),
		"token_type":   "Bearer",
		"expires_in":   86400,
		"scope":        scope,
	})
}

func (m *MockFatSecretServer) handleAPI(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	method := r.PostForm.Get("method")
	m.capture(r, method, "")

	m.mu.Lock()
	override := m.override
	m.mu.Unlock()
	if override != nil {
		override(w, r)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch method {
	case fatsecret.MethodFoodsSearch:
		foods, ok := m.searches[strings.ToLower(r.PostForm.Get("search_expression"))]
		if !ok {
			// The vendor answers an empty search with total_results 0 and no food key.
			foods = json.RawMessage(`{"max_results":"25","page_number":"0","total_results":"0"}`)
		}
		writeJSON(w, http.StatusOK, map[string]json.RawMessage{"foods": foods})

	case fatsecret.MethodFoodGet:
		food, ok := m.foods[r.PostForm.Get("food_id")]
		if !ok {
			writeVendorError(w, vendorCodeInvalidID, "Invalid ID: food_id not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]json.RawMessage{"food": food})

	case fatsecret.MethodFindIDForBarcode:
		id, ok := m.barcodes[r.PostForm.Get("barcode")]
		if !ok {
			writeVendorError(w, vendorCodeNoMatch, "No matches found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"food_id": map[string]string{"value": id}})

	default:
		http.Error(w, "unknown method", http.StatusBadRequest)
	}
}

func writeVendorError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"error": map[string]interface{}{"code": code, "message": message},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
