// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nutriproxy/internal/cache"
	"github.com/tomtom215/nutriproxy/internal/config"
	fsmodels "github.com/tomtom215/nutriproxy/internal/models/fatsecret"
)

// fakeVendor serves a token endpoint at /token and the data endpoint at /api.
type fakeVendor struct {
	server *httptest.Server

	grants   atomic.Int32
	apiCalls atomic.Int32

	mu         sync.Mutex
	tokenDelay time.Duration
	tokenFail  int // status to answer grants with, 0 for success
	expiresIn  int
	api        http.HandlerFunc
	lastForm   url.Values
	lastAuth   string
	grantForms []url.Values
}

func newFakeVendor(t *testing.T) *fakeVendor {
	t.Helper()
	f := &fakeVendor{expiresIn: 86400}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", f.handleToken)
	mux.HandleFunc("/api", f.handleAPI)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func tokenFor(scope string) string {
	return "tok-" + strings.ReplaceAll(scope, " ", "-")
}

func (f *fakeVendor) handleToken(w http.ResponseWriter, r *http.Request) {
	f.grants.Add(1)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.grantForms = append(f.grantForms, r.PostForm)
	delay, fail, expiresIn := f.tokenDelay, f.tokenFail, f.expiresIn
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	w.Header().Set("Content-Type", "application/json")
	if fail != 0 {
		w.WriteHeader(fail)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
		return
	}
	_ = json.NewEncoder(w).Encode(fsmodels.TokenResponse{
		AccessToken: tokenFor(r.PostForm.Get("scope")),
		TokenType:   "Bearer",
		ExpiresIn:   fsmodels.FlexInt(expiresIn),
		Scope:       r.PostForm.Get("scope"),
	})
}

func (f *fakeVendor) handleAPI(w http.ResponseWriter, r *http.Request) {
	f.apiCalls.Add(1)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.lastForm = r.PostForm
	f.lastAuth = r.Header.Get("Authorization")
	handler := f.api
	f.mu.Unlock()

	if handler == nil {
		http.Error(w, "no handler", http.StatusInternalServerError)
		return
	}
	handler(w, r)
}

func (f *fakeVendor) setAPI(h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.api = h
}

func (f *fakeVendor) respondJSON(status int, body string) {
	f.setAPI(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (f *fakeVendor) form() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastForm
}

func (f *fakeVendor) auth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAuth
}

func (f *fakeVendor) config() *config.FatSecretConfig {
	return &config.FatSecretConfig{
		ClientID:             "client-id",
		ClientSecret:         "client-secret",
		TokenURL:             f.server.URL + "/token",
		APIURL:               f.server.URL + "/api",
		Scope:                config.DefaultScope,
		BarcodeScope:         config.DefaultBarcodeScope,
		Timeout:              5 * time.Second,
		MaxResults:           25,
		TokenSafetyMargin:    100 * time.Second,
		DefaultTokenLifetime: 24 * time.Hour,
	}
}

func newTestStore() *cache.Store {
	return cache.NewStore(cache.New(time.Minute), nil)
}

// newTestClient wires a real TokenManager and Client against f.
func newTestClient(f *fakeVendor) (*Client, *TokenManager) {
	cfg := f.config()
	tokens := NewTokenManager(cfg, newTestStore(), f.server.Client())
	return NewClient(cfg, tokens, f.server.Client()), tokens
}

// stubTokens is a TokenProvider that never touches the network.
type stubTokens struct {
	mu          sync.Mutex
	token       string
	err         error
	invalidated []string
}

func (s *stubTokens) Token(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.err
}

func (s *stubTokens) Invalidate(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = append(s.invalidated, scope)
}
