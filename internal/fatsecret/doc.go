// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package fatsecret talks to the FatSecret Platform API.

# Components

  - TokenManager: OAuth2 client-credentials grants (golang.org/x/oauth2/clientcredentials),
    one cached token per scope in the token namespace of cache.Store. Tokens are
    refreshed TOKEN_SAFETY_MARGIN before expiry; concurrent misses share one grant.
  - Client: form-encoded POST to the data endpoint with the method name in the body,
    bearer auth and an outbound golang.org/x/time/rate limiter. No retries.
  - CircuitBreakerClient: sony/gobreaker/v2 around Client. An open circuit is
    reported as ErrUnavailable without calling the vendor.

# Errors

  - ErrNotFound: error codes 106 and 211, "not found"/"no match" messages, HTTP 404,
    a missing food object or a zero barcode id
  - ErrUnavailable: network failures and rejected breaker calls
  - ErrTokenAcquisition: the grant failed or credentials are missing
  - ErrMalformedResponse: a body that is not the expected JSON
  - *UpstreamError: any other non-2xx status or vendor error envelope

HTTP 401/403 and error codes 13/14 invalidate the cached token for the scope so
the next request re-authenticates. The failing request itself is not retried.
Tokens and client secrets are never logged.
*/
package fatsecret
