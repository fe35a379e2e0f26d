package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeClock hands the gate a controllable notion of now.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestGate(timeout time.Duration) (*Gate, *MemoryStore, *fakeClock) {
	store := NewMemoryStore()
	clock := &fakeClock{current: time.UnixMilli(1750000000000)}
	gate := NewGate(store, timeout, zap.NewNop())
	gate.now = clock.now
	return gate, store, clock
}

func TestGate_Miss_FetchesAndStores(t *testing.T) {
	gate, store, _ := newTestGate(10 * time.Minute)

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return `{"id":"evt-1"}`, nil
	}

	value, err := gate.ReadThrough(context.Background(), "events-evt-1", fetch)

	assert.NoError(t, err)
	assert.Equal(t, `{"id":"evt-1"}`, value)
	assert.Equal(t, 1, calls)

	cached, ok, _ := store.Get(context.Background(), "events-evt-1")
	assert.True(t, ok)
	assert.Equal(t, `{"id":"evt-1"}`, cached)

	_, ok, _ = store.Get(context.Background(), "events-evt-1-fetch-ts")
	assert.True(t, ok)
}

func TestGate_FreshEntryServedWithoutRemoteCall(t *testing.T) {
	gate, _, clock := newTestGate(10 * time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "remote", nil
	}

	_, err := gate.ReadThrough(ctx, "k", fetch)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	// One millisecond inside the window: served from cache.
	clock.advance(599999 * time.Millisecond)
	value, err := gate.ReadThrough(ctx, "k", fetch)
	assert.NoError(t, err)
	assert.Equal(t, "remote", value)
	assert.Equal(t, 1, calls)
}

func TestGate_StaleEntryTriggersRemoteCall(t *testing.T) {
	gate, _, clock := newTestGate(10 * time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "remote", nil
	}

	_, err := gate.ReadThrough(ctx, "k", fetch)
	assert.NoError(t, err)

	clock.advance(600001 * time.Millisecond)
	_, err = gate.ReadThrough(ctx, "k", fetch)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGate_FetchErrorPropagatesUnchanged(t *testing.T) {
	gate, store, _ := newTestGate(10 * time.Minute)
	ctx := context.Background()

	remoteErr := errors.New("remote store unavailable")
	fetch := func(ctx context.Context) (string, error) {
		return "", remoteErr
	}

	value, err := gate.ReadThrough(ctx, "k", fetch)

	assert.ErrorIs(t, err, remoteErr)
	assert.Empty(t, value)

	// Nothing was cached for the failed fetch.
	_, ok, _ := store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestGate_StaleValueNotServedOnFetchError(t *testing.T) {
	gate, _, clock := newTestGate(10 * time.Minute)
	ctx := context.Background()

	_, err := gate.ReadThrough(ctx, "k", func(ctx context.Context) (string, error) {
		return "old", nil
	})
	assert.NoError(t, err)

	clock.advance(11 * time.Minute)

	remoteErr := errors.New("remote store unavailable")
	_, err = gate.ReadThrough(ctx, "k", func(ctx context.Context) (string, error) {
		return "", remoteErr
	})
	assert.ErrorIs(t, err, remoteErr)
}

func TestGate_UnreadableTimestampIsAMiss(t *testing.T) {
	gate, store, _ := newTestGate(10 * time.Minute)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "k", "cached"))
	assert.NoError(t, store.Set(ctx, "k-fetch-ts", "not-a-number"))

	calls := 0
	value, err := gate.ReadThrough(ctx, "k", func(ctx context.Context) (string, error) {
		calls++
		return "remote", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "remote", value)
	assert.Equal(t, 1, calls)
}

func TestGate_MissingTimestampIsAMiss(t *testing.T) {
	gate, store, _ := newTestGate(10 * time.Minute)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "k", "cached"))

	calls := 0
	_, err := gate.ReadThrough(ctx, "k", func(ctx context.Context) (string, error) {
		calls++
		return "remote", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGate_WriteThroughRefreshesEntry(t *testing.T) {
	gate, _, clock := newTestGate(10 * time.Minute)
	ctx := context.Background()

	_, err := gate.ReadThrough(ctx, "k", func(ctx context.Context) (string, error) {
		return "v1", nil
	})
	assert.NoError(t, err)

	clock.advance(5 * time.Minute)
	gate.WriteThrough(ctx, "k", "v2")

	// The write reset the freshness window, so 9 minutes later the new
	// value is still served from cache.
	clock.advance(9 * time.Minute)
	calls := 0
	value, err := gate.ReadThrough(ctx, "k", func(ctx context.Context) (string, error) {
		calls++
		return "v3", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "v2", value)
	assert.Equal(t, 0, calls)
}

func TestGate_InvalidateForcesRemoteCall(t *testing.T) {
	gate, _, _ := newTestGate(10 * time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "remote", nil
	}

	_, err := gate.ReadThrough(ctx, "k", fetch)
	assert.NoError(t, err)

	gate.Invalidate(ctx, "k")

	_, err = gate.ReadThrough(ctx, "k", fetch)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
