// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestStore(clock *fakeClock) *Store {
	return NewStore(NewWithClock(time.Minute, clock.Now), map[Namespace]time.Duration{
		NamespaceSearch: time.Hour,
	})
}

func TestStoreNamespacesAreIsolated(t *testing.T) {
	s := newTestStore(newFakeClock())

	s.Set(NamespaceSearch, "33691", "search value")
	s.Set(NamespaceDetail, "33691", "detail value")

	got, ok := s.Get(NamespaceSearch, "33691")
	if !ok || got != "search value" {
		t.Errorf("search namespace = %v, %v", got, ok)
	}
	got, ok = s.Get(NamespaceDetail, "33691")
	if !ok || got != "detail value" {
		t.Errorf("detail namespace = %v, %v", got, ok)
	}

	s.Delete(NamespaceSearch, "33691")
	if _, ok := s.Get(NamespaceSearch, "33691"); ok {
		t.Error("Expected search entry to be deleted")
	}
	if _, ok := s.Get(NamespaceDetail, "33691"); !ok {
		t.Error("Expected detail entry to survive delete in another namespace")
	}
}

func TestStoreNamespaceTTL(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(clock)

	if got := s.TTL(NamespaceSearch); got != time.Hour {
		t.Errorf("search TTL = %v, want 1h", got)
	}
	if got := s.TTL(NamespaceDetail); got != DefaultDetailTTL {
		t.Errorf("detail TTL = %v, want default %v", got, DefaultDetailTTL)
	}

	s.Set(NamespaceSearch, "apple", "results")
	s.Set(NamespaceDetail, "1", "food")

	clock.Advance(time.Hour)
	if _, ok := s.Get(NamespaceSearch, "apple"); ok {
		t.Error("Expected search entry to expire after its namespace TTL")
	}
	if _, ok := s.Get(NamespaceDetail, "1"); !ok {
		t.Error("Expected detail entry to outlive search TTL")
	}
}

func TestStoreGetOrLoadCachesSuccess(t *testing.T) {
	s := newTestStore(newFakeClock())
	var calls int32

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		return "loaded", 0, nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.GetOrLoad(context.Background(), NamespaceDetail, "42", load)
		if err != nil {
			t.Fatalf("GetOrLoad() error = %v", err)
		}
		if v != "loaded" {
			t.Errorf("GetOrLoad() = %v, want loaded", v)
		}
	}

	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestStoreGetOrLoadNeverCachesErrors(t *testing.T) {
	s := newTestStore(newFakeClock())
	var calls int32
	errUpstream := errors.New("upstream down")

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, 0, errUpstream
		}
		return "recovered", 0, nil
	}

	if _, err := s.GetOrLoad(context.Background(), NamespaceSearch, "apple", load); !errors.Is(err, errUpstream) {
		t.Fatalf("first GetOrLoad() error = %v, want %v", err, errUpstream)
	}

	v, err := s.GetOrLoad(context.Background(), NamespaceSearch, "apple", load)
	if err != nil {
		t.Fatalf("second GetOrLoad() error = %v", err)
	}
	if v != "recovered" || calls != 2 {
		t.Errorf("got %v after %d calls, want recovered after 2", v, calls)
	}
}

func TestStoreGetOrLoadExplicitTTL(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(clock)

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		return "token", 10 * time.Second, nil
	}
	if _, err := s.GetOrLoad(context.Background(), NamespaceToken, "basic", load); err != nil {
		t.Fatal(err)
	}

	clock.Advance(9 * time.Second)
	if _, ok := s.Get(NamespaceToken, "basic"); !ok {
		t.Error("Expected token to be cached before its TTL")
	}
	clock.Advance(time.Second)
	if _, ok := s.Get(NamespaceToken, "basic"); ok {
		t.Error("Expected token to expire at its explicit TTL")
	}
}

func TestStoreGetOrLoadNegativeTTLSkipsCache(t *testing.T) {
	s := newTestStore(newFakeClock())

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		return "ephemeral", -1, nil
	}
	v, err := s.GetOrLoad(context.Background(), NamespaceSearch, "x", load)
	if err != nil || v != "ephemeral" {
		t.Fatalf("GetOrLoad() = %v, %v", v, err)
	}
	if _, ok := s.Get(NamespaceSearch, "x"); ok {
		t.Error("Expected negative TTL value not to be cached")
	}
}

func TestStoreGetOrLoadCollapsesConcurrentMisses(t *testing.T) {
	s := newTestStore(newFakeClock())
	var calls int32
	release := make(chan struct{})

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", 0, nil
	}

	const callers = 20
	var wg sync.WaitGroup
	results := make([]interface{}, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.GetOrLoad(context.Background(), NamespaceSearch, "apple", load)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil || results[i] != "shared" {
			t.Errorf("caller %d got %v, %v", i, results[i], errs[i])
		}
	}
}

func TestStoreGetOrLoadWaiterContextCanceled(t *testing.T) {
	s := newTestStore(newFakeClock())
	release := make(chan struct{})
	defer close(release)

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		<-release
		return "late", 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.GetOrLoad(ctx, NamespaceDetail, "slow", load)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("GetOrLoad() error = %v, want deadline exceeded", err)
	}
}

func TestStoreGetOrLoadSurvivesStarterCancel(t *testing.T) {
	s := newTestStore(newFakeClock())
	started := make(chan struct{})
	release := make(chan struct{})
	var loadErr atomic.Value

	load := func(ctx context.Context) (interface{}, time.Duration, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			loadErr.Store(err)
			return nil, 0, err
		}
		return "shared", 0, nil
	}

	starterCtx, cancel := context.WithCancel(context.Background())
	starterDone := make(chan error, 1)
	go func() {
		_, err := s.GetOrLoad(starterCtx, NamespaceSearch, "apple", load)
		starterDone <- err
	}()
	<-started

	waiterDone := make(chan struct{})
	var got interface{}
	var waiterErr error
	go func() {
		defer close(waiterDone)
		got, waiterErr = s.GetOrLoad(context.Background(), NamespaceSearch, "apple", load)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	if err := <-starterDone; !errors.Is(err, context.Canceled) {
		t.Errorf("starter error = %v, want context.Canceled", err)
	}

	close(release)
	<-waiterDone

	if waiterErr != nil || got != "shared" {
		t.Fatalf("waiter got %v, %v; want shared, nil", got, waiterErr)
	}
	if err, _ := loadErr.Load().(error); err != nil {
		t.Errorf("load saw cancelled context: %v", err)
	}
	if v, ok := s.Get(NamespaceSearch, "apple"); !ok || v != "shared" {
		t.Errorf("cached value = %v, %v; want shared", v, ok)
	}
}

func TestLoadTyped(t *testing.T) {
	s := newTestStore(newFakeClock())

	n, err := Load(context.Background(), s, NamespaceBarcode, "0041570054161", func(ctx context.Context) (string, time.Duration, error) {
		return "33691", 0, nil
	})
	if err != nil || n != "33691" {
		t.Fatalf("Load() = %q, %v", n, err)
	}

	// A value of another type under the same key is reported, not panicked on
	_, err = Load(context.Background(), s, NamespaceBarcode, "0041570054161", func(ctx context.Context) (int, time.Duration, error) {
		return 0, 0, nil
	})
	if err == nil {
		t.Error("Expected type mismatch error")
	}
}

func TestStoreCleanupAndStats(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(clock)

	s.Set(NamespaceSearch, "a", 1)
	s.SetWithTTL(NamespaceToken, "basic", "tok", time.Second)
	s.Get(NamespaceSearch, "a")
	s.Get(NamespaceSearch, "b")

	clock.Advance(2 * time.Second)
	if removed := s.Cleanup(); removed != 1 {
		t.Errorf("Cleanup() removed %d, want 1", removed)
	}

	stats := s.Stats()
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 1/1", stats.Hits, stats.Misses)
	}
	if stats.TTLs[NamespaceSearch] != "1h0m0s" {
		t.Errorf("search TTL = %q, want 1h0m0s", stats.TTLs[NamespaceSearch])
	}
}
