// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package cache provides thread-safe in-memory caching with TTL support.

Two layers are provided:

  - Cache: a key-value map guarded by sync.RWMutex. Each entry carries its own
    expiry; expired entries are dropped lazily on Get and by Cleanup.
  - Store: a namespaced view over a Cacher with an independent TTL per
    namespace and a single-flight loader (golang.org/x/sync/singleflight).

# Namespaces

	token    OAuth access tokens, keyed by scope (TTL from the grant response)
	search   normalized search results, keyed by query/page/max_results (1h)
	detail   normalized food records, keyed by vendor food id (24h)
	barcode  barcode to food id resolutions, keyed by GTIN-13 (24h)

# Usage Example

	store := cache.NewStore(cache.New(time.Hour), cache.DefaultTTLs())

	food, err := cache.Load(ctx, store, cache.NamespaceDetail, id,
	    func(ctx context.Context) (models.Food, time.Duration, error) {
	        f, err := fetch(ctx, id)
	        return f, 0, err // 0 = namespace TTL
	    })

Concurrent callers missing the same key share one load. Errors are returned to
every waiter and are never cached.

# Cache Keys

Store keys are "<namespace>:<key>". GenerateKey hashes arbitrary parameters
(SHA-256 over the JSON encoding) when a compound key is needed.

# Cleanup

Expired entries that are never read again are reclaimed by Cleanup, which the
supervisor runs periodically through the cache janitor service.
*/
package cache
