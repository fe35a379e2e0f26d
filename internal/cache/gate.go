package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FetchFunc retrieves the authoritative copy of a resource from the remote
// store. It is only invoked when the cached snapshot is missing or stale.
type FetchFunc func(ctx context.Context) (string, error)

// Gate is the read-through freshness policy wrapping every remote read: a
// cached snapshot younger than the configured timeout is served without
// touching the remote store. Any failure to read or parse the cached entry
// is treated as a miss, never as a fatal error. Remote fetch failures are
// propagated unchanged; the gate never falls back to a stale snapshot.
type Gate struct {
	store   Store
	timeout time.Duration
	now     func() time.Time
	mu      sync.Mutex
	log     *zap.Logger
}

// NewGate creates a gate over the given store with the given freshness
// timeout.
func NewGate(store Store, timeout time.Duration, log *zap.Logger) *Gate {
	return &Gate{
		store:   store,
		timeout: timeout,
		now:     time.Now,
		log:     log,
	}
}

// tsKey is the sibling key holding the last-fetch timestamp in unix millis.
func tsKey(key string) string {
	return key + "-fetch-ts"
}

// ReadThrough returns the cached value at key when it is still fresh,
// otherwise calls fetch, stores the result and its fetch time, and returns
// it. The whole check-fetch-store sequence holds the gate's lock so
// concurrent readers cannot interleave between the freshness check and the
// store update.
func (g *Gate) ReadThrough(ctx context.Context, key string, fetch FetchFunc) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if value, ok := g.freshValue(ctx, key); ok {
		g.log.Debug("Cache hit", zap.String("key", key))
		return value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	g.storeValue(ctx, key, value)
	return value, nil
}

// WriteThrough records a value that was just written to the remote store,
// so reads within the freshness window see the new state immediately.
func (g *Gate) WriteThrough(ctx context.Context, key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.storeValue(ctx, key, value)
}

// Invalidate drops a cache entry so the next read goes remote.
func (g *Gate) Invalidate(ctx context.Context, key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Remove(ctx, key); err != nil {
		g.log.Warn("Failed to remove cache entry", zap.String("key", key), zap.Error(err))
	}
	if err := g.store.Remove(ctx, tsKey(key)); err != nil {
		g.log.Warn("Failed to remove cache timestamp", zap.String("key", key), zap.Error(err))
	}
}

// freshValue returns the cached value when both the value and its timestamp
// are present and the entry's age is strictly below the timeout.
func (g *Gate) freshValue(ctx context.Context, key string) (string, bool) {
	value, ok, err := g.store.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			g.log.Warn("Cache read failed, treating as miss", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}

	raw, ok, err := g.store.Get(ctx, tsKey(key))
	if err != nil || !ok {
		return "", false
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		g.log.Warn("Unreadable cache timestamp, treating as miss",
			zap.String("key", key),
			zap.String("value", raw))
		return "", false
	}

	age := g.now().Sub(time.UnixMilli(millis))
	if age < g.timeout {
		return value, true
	}
	return "", false
}

func (g *Gate) storeValue(ctx context.Context, key, value string) {
	if err := g.store.Set(ctx, key, value); err != nil {
		g.log.Warn("Failed to store cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	ts := fmt.Sprintf("%d", g.now().UnixMilli())
	if err := g.store.Set(ctx, tsKey(key), ts); err != nil {
		g.log.Warn("Failed to store cache timestamp", zap.String("key", key), zap.Error(err))
	}
}
