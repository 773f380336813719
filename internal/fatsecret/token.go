// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tomtom215/nutriproxy/internal/cache"
	"github.com/tomtom215/nutriproxy/internal/config"
	"github.com/tomtom215/nutriproxy/internal/logging"
	"github.com/tomtom215/nutriproxy/internal/metrics"
)

// TokenProvider hands out bearer tokens per OAuth2 scope.
type TokenProvider interface {
	Token(ctx context.Context, scope string) (string, error)
	Invalidate(scope string)
}

var errNoCredentials = errors.New("client credentials are not configured")

// TokenManager obtains client-credentials tokens and keeps them in the token
// namespace of the cache store, one entry per scope. A cached token is reused
// until safetyMargin before it expires; concurrent misses for the same scope
// share one grant request.
type TokenManager struct {
	store      *cache.Store
	httpClient *http.Client

	clientID     string
	clientSecret string
	tokenURL     string

	safetyMargin    time.Duration
	defaultLifetime time.Duration
}

// NewTokenManager creates a TokenManager. httpClient may be nil, in which case
// a client with the configured timeout is used.
func NewTokenManager(cfg *config.FatSecretConfig, store *cache.Store, httpClient *http.Client) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &TokenManager{
		store:           store,
		httpClient:      httpClient,
		clientID:        cfg.ClientID,
		clientSecret:    cfg.ClientSecret,
		tokenURL:        cfg.TokenURL,
		safetyMargin:    cfg.TokenSafetyMargin,
		defaultLifetime: cfg.DefaultTokenLifetime,
	}
}

// Token returns a valid access token for scope.
func (m *TokenManager) Token(ctx context.Context, scope string) (string, error) {
	scope = normalizeScope(scope)
	return cache.Load(ctx, m.store, cache.NamespaceToken, scope, func(ctx context.Context) (string, time.Duration, error) {
		tok, err := m.grant(ctx, scope)
		if err != nil {
			return "", 0, err
		}
		return tok.AccessToken, m.cacheTTL(tok), nil
	})
}

// Invalidate drops the cached token for scope so the next call re-authenticates.
func (m *TokenManager) Invalidate(scope string) {
	scope = normalizeScope(scope)
	m.store.Delete(cache.NamespaceToken, scope)
	logging.Debug().Str("scope", scope).Msg("Access token invalidated")
}

func (m *TokenManager) grant(ctx context.Context, scope string) (*oauth2.Token, error) {
	if m.clientID == "" || m.clientSecret == "" {
		metrics.RecordTokenRequest(scope, 0, errNoCredentials)
		return nil, fmt.Errorf("%w: %w", ErrTokenAcquisition, errNoCredentials)
	}

	cc := &clientcredentials.Config{
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
		TokenURL:     m.tokenURL,
		Scopes:       strings.Fields(scope),
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	start := time.Now()
	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, m.httpClient))
	duration := time.Since(start)
	metrics.RecordTokenRequest(scope, duration, err)

	if err != nil {
		ev := logging.CtxWarn(ctx).Str("scope", scope).Dur("duration", duration)
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			ev = ev.Int("status", re.Response.StatusCode).Str("error_code", re.ErrorCode)
		}
		ev.Msg("Token request failed")
		return nil, fmt.Errorf("%w: %w", ErrTokenAcquisition, err)
	}

	logging.CtxDebug(ctx).Str("scope", scope).Dur("duration", duration).Msg("Access token acquired")
	return tok, nil
}

// cacheTTL derives the cache lifetime of tok. Tokens are refreshed
// safetyMargin early; a lifetime shorter than the margin is halved instead.
// A negative result tells the store not to cache the token.
func (m *TokenManager) cacheTTL(tok *oauth2.Token) time.Duration {
	lifetime := m.defaultLifetime
	if !tok.Expiry.IsZero() {
		lifetime = time.Until(tok.Expiry)
	}
	return tokenTTL(lifetime, m.safetyMargin)
}

func tokenTTL(lifetime, margin time.Duration) time.Duration {
	var ttl time.Duration
	if lifetime > margin {
		ttl = lifetime - margin
	} else {
		ttl = lifetime / 2
	}
	if ttl <= 0 {
		return -1
	}
	return ttl
}

// normalizeScope collapses whitespace so "basic  barcode" and "basic barcode"
// share a cache entry.
func normalizeScope(scope string) string {
	return strings.Join(strings.Fields(scope), " ")
}
