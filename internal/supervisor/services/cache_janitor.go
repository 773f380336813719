// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package services

import (
	"context"
	"time"

	"github.com/tomtom215/nutriproxy/internal/logging"
)

// Sweeper removes expired entries and reports how many it evicted.
// *cache.Store satisfies it.
type Sweeper interface {
	Cleanup() int
}

// CacheJanitorService sweeps expired cache entries on a fixed interval.
// Reads already ignore expired entries; the sweep bounds memory held by
// keys that are never read again.
type CacheJanitorService struct {
	sweeper  Sweeper
	interval time.Duration
	name     string
}

// NewCacheJanitorService creates a janitor. A non-positive interval uses 5m.
func NewCacheJanitorService(sweeper Sweeper, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheJanitorService{
		sweeper:  sweeper,
		interval: interval,
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	log := logging.WithComponent(j.name)
	log.Debug().Dur("interval", j.interval).Msg("Cache janitor started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if evicted := j.sweeper.Cleanup(); evicted > 0 {
				log.Debug().Int("evicted", evicted).Msg("Expired cache entries removed")
			}
		}
	}
}

// String identifies the service in supervisor events.
func (j *CacheJanitorService) String() string {
	return j.name
}
