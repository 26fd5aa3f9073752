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

func TestInMemoryIdempotencyStore_MarkProcessed(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	t.Run("first claim wins", func(t *testing.T) {
		claimed, err := store.MarkProcessed(ctx, "user-1:key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = store.MarkProcessed(ctx, "user-1:key-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, claimed, "replay is rejected")

		processed, err := store.IsProcessed(ctx, "user-1:key-1")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("expired claim can be taken again", func(t *testing.T) {
		claimed, err := store.MarkProcessed(ctx, "short", 10*time.Millisecond)
		require.NoError(t, err)
		require.True(t, claimed)

		time.Sleep(20 * time.Millisecond)

		processed, err := store.IsProcessed(ctx, "short")
		require.NoError(t, err)
		assert.False(t, processed)

		claimed, err = store.MarkProcessed(ctx, "short", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("released claim can be retried", func(t *testing.T) {
		_, err := store.MarkProcessed(ctx, "failed-checkout", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "failed-checkout"))

		claimed, err := store.MarkProcessed(ctx, "failed-checkout", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed)
	})
}

func TestInMemoryIdempotencyStore_ConcurrentClaims(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Close()

	var winners atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := store.MarkProcessed(context.Background(), "same-key", time.Hour)
			if err == nil && claimed {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, winners.Load())
}

func TestInMemoryIdempotencyStore_Sweep(t *testing.T) {
	store := NewInMemoryIdempotencyStore(5 * time.Millisecond)
	defer store.Close()

	_, err := store.MarkProcessed(context.Background(), "k", time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return store.Size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore(0)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
