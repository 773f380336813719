// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package cache

import "time"

// Cacher defines the interface for cache implementations backing a Store.
// Cache is the in-memory TTL implementation; tests may substitute their own.
//
// Usage:
//
//	var c Cacher = New(5 * time.Minute)
//	store := NewStore(c, DefaultTTLs())
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all entries from the cache.
	Clear()

	// Cleanup sweeps expired entries and returns how many were removed.
	Cleanup() int

	// Len returns the number of stored entries.
	Len() int

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64
}

// Verify interface implementations at compile time
var _ Cacher = (*Cache)(nil)
