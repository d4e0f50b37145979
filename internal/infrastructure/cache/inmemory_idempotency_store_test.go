package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewInMemoryIdempotencyStore(WithNowFunc(clock.Now))
	defer store.Close()

	t.Run("first mark wins", func(t *testing.T) {
		ok, err := store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)

		processed, err := store.IsProcessed(ctx, "key-1")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("expired key can be reused", func(t *testing.T) {
		ok, err := store.MarkProcessed(ctx, "key-2", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		clock.Advance(2 * time.Minute)

		processed, err := store.IsProcessed(ctx, "key-2")
		require.NoError(t, err)
		assert.False(t, processed)

		ok, err = store.MarkProcessed(ctx, "key-2", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("forget releases the key", func(t *testing.T) {
		_, err := store.MarkProcessed(ctx, "key-3", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Forget(ctx, "key-3"))

		ok, err := store.MarkProcessed(ctx, "key-3", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cleanup drops expired keys", func(t *testing.T) {
		_, err := store.MarkProcessed(ctx, "short", time.Second)
		require.NoError(t, err)
		before := store.Size()

		clock.Advance(2 * time.Hour)
		store.cleanup()

		assert.Less(t, store.Size(), before)
		assert.Zero(t, store.Size())
	})
}

func TestInMemoryIdempotencyStore_ConcurrentMark(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.MarkProcessed(context.Background(), "same-key", time.Hour)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
}

func TestInMemoryIdempotencyStore_CloseTwice(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
