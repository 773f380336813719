// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/nutriproxy/internal/metrics"
)

// Namespace partitions the key space of a Store. Each namespace has its own TTL.
type Namespace string

const (
	NamespaceToken   Namespace = "token"
	NamespaceSearch  Namespace = "search"
	NamespaceDetail  Namespace = "detail"
	NamespaceBarcode Namespace = "barcode"
)

// Default lifetimes per namespace. Token entries carry their own TTL derived
// from the grant response; the namespace default only applies when none is given.
const (
	DefaultSearchTTL  = time.Hour
	DefaultDetailTTL  = 24 * time.Hour
	DefaultBarcodeTTL = 24 * time.Hour
	DefaultTokenTTL   = 23 * time.Hour
)

// DefaultTTLs returns the default lifetime of every namespace.
func DefaultTTLs() map[Namespace]time.Duration {
	return map[Namespace]time.Duration{
		NamespaceToken:   DefaultTokenTTL,
		NamespaceSearch:  DefaultSearchTTL,
		NamespaceDetail:  DefaultDetailTTL,
		NamespaceBarcode: DefaultBarcodeTTL,
	}
}

// LoadFunc produces a value for a cache miss. A zero ttl stores the value with
// the namespace default; a negative ttl returns the value without caching it.
type LoadFunc func(ctx context.Context) (value interface{}, ttl time.Duration, err error)

// Store is a namespaced view over a Cacher. Keys are stored as
// "<namespace>:<key>" so namespaces never collide.
//
// Concurrent misses for the same full key are collapsed into one LoadFunc call;
// every waiter receives the shared result. Errors are never cached.
type Store struct {
	cache Cacher
	ttls  map[Namespace]time.Duration
	group singleflight.Group
}

// NewStore wraps c. Namespaces missing from ttls fall back to DefaultTTLs.
func NewStore(c Cacher, ttls map[Namespace]time.Duration) *Store {
	merged := DefaultTTLs()
	for ns, ttl := range ttls {
		if ttl > 0 {
			merged[ns] = ttl
		}
	}
	return &Store{cache: c, ttls: merged}
}

// Key returns the full cache key for key within ns.
func Key(ns Namespace, key string) string {
	return string(ns) + ":" + key
}

// TTL returns the configured lifetime of ns.
func (s *Store) TTL(ns Namespace) time.Duration {
	return s.ttls[ns]
}

// Get looks key up in ns and records the hit or miss.
func (s *Store) Get(ns Namespace, key string) (interface{}, bool) {
	value, ok := s.cache.Get(Key(ns, key))
	metrics.RecordCacheLookup(string(ns), ok)
	return value, ok
}

// Set stores value in ns with the namespace TTL.
func (s *Store) Set(ns Namespace, key string, value interface{}) {
	s.cache.SetWithTTL(Key(ns, key), value, s.ttls[ns])
}

// SetWithTTL stores value in ns with an explicit TTL.
func (s *Store) SetWithTTL(ns Namespace, key string, value interface{}, ttl time.Duration) {
	s.cache.SetWithTTL(Key(ns, key), value, ttl)
}

// Delete removes key from ns.
func (s *Store) Delete(ns Namespace, key string) {
	s.cache.Delete(Key(ns, key))
}

// GetOrLoad returns the cached value for key in ns, or calls load once for all
// concurrent callers missing the same key and caches its successful result.
//
// The load runs detached from the cancellation of the caller that started it,
// so one client going away cannot fail the others sharing the flight. Values
// such as the request ID still reach it. Each caller stops waiting when its
// own ctx is done.
func (s *Store) GetOrLoad(ctx context.Context, ns Namespace, key string, load LoadFunc) (interface{}, error) {
	if value, ok := s.Get(ns, key); ok {
		return value, nil
	}

	full := Key(ns, key)
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(full, func() (interface{}, error) {
		// Another flight may have filled the entry between our miss and now.
		if value, ok := s.cache.Get(full); ok {
			return value, nil
		}

		value, ttl, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		switch {
		case ttl == 0:
			s.cache.SetWithTTL(full, value, s.ttls[ns])
		case ttl > 0:
			s.cache.SetWithTTL(full, value, ttl)
		}
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.CacheLoadsCollapsed.WithLabelValues(string(ns)).Inc()
		}
		return res.Val, res.Err
	}
}

// Load is the typed form of Store.GetOrLoad.
func Load[T any](ctx context.Context, s *Store, ns Namespace, key string, load func(ctx context.Context) (T, time.Duration, error)) (T, error) {
	var zero T
	value, err := s.GetOrLoad(ctx, ns, key, func(ctx context.Context) (interface{}, time.Duration, error) {
		v, ttl, err := load(ctx)
		return v, ttl, err
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache: unexpected value type %T for %s", value, Key(ns, key))
	}
	return typed, nil
}

// Cleanup sweeps expired entries from the underlying cache and publishes the
// resulting size.
func (s *Store) Cleanup() int {
	evicted := s.cache.Cleanup()
	metrics.RecordCacheSweep(evicted, s.cache.Len())
	return evicted
}

// StoreStats summarises the store for status reporting.
type StoreStats struct {
	Entries   int                  `json:"entries"`
	Hits      int64                `json:"hits"`
	Misses    int64                `json:"misses"`
	Evictions int64                `json:"evictions"`
	HitRate   float64              `json:"hit_rate"`
	TTLs      map[Namespace]string `json:"ttls"`
}

// Stats returns a snapshot of the underlying cache statistics.
func (s *Store) Stats() StoreStats {
	st := s.cache.GetStats()
	ttls := make(map[Namespace]string, len(s.ttls))
	for ns, ttl := range s.ttls {
		ttls[ns] = ttl.String()
	}
	return StoreStats{
		Entries:   s.cache.Len(),
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
		HitRate:   s.cache.HitRate(),
		TTLs:      ttls,
	}
}
