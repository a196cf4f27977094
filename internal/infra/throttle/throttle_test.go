package throttle

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryThrottle_CooldownPerKey(t *testing.T) {
	th := NewMemoryThrottle()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	th.now = func() time.Time { return now }

	ctx := context.Background()
	user := uuid.New().String()

	ok, err := th.Allow(ctx, Key("payment", user), 2*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Second)
	ok, _ = th.Allow(ctx, Key("payment", user), 2*time.Second)
	assert.False(t, ok, "second submission inside the cool-down is rejected")

	ok, _ = th.Allow(ctx, Key("booking", user), 2*time.Second)
	assert.True(t, ok, "other forms are independent")

	now = now.Add(time.Second)
	ok, _ = th.Allow(ctx, Key("payment", user), 2*time.Second)
	assert.True(t, ok, "allowed again once the interval has passed")
}

func TestMemoryThrottle_EvictionIsRateLimited(t *testing.T) {
	th := NewMemoryThrottle()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	th.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < sweepThreshold; i++ {
		ok, err := th.Allow(ctx, Key("sign-in", fmt.Sprintf("198.51.100.%d", i)), time.Second)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Len(t, th.until, sweepThreshold)

	// Отметки истекли, но очередной проход еще не разрешен
	now = now.Add(2 * time.Second)
	_, err := th.Allow(ctx, Key("sign-in", "late-1"), time.Second)
	require.NoError(t, err)
	assert.Len(t, th.until, sweepThreshold+1)

	now = now.Add(sweepInterval)
	_, err = th.Allow(ctx, Key("sign-in", "late-2"), time.Second)
	require.NoError(t, err)
	assert.Len(t, th.until, 1)
	assert.Contains(t, th.until, Key("sign-in", "late-2"))
}

func TestMemoryThrottle_ZeroIntervalDisables(t *testing.T) {
	th := NewMemoryThrottle()
	for i := 0; i < 3; i++ {
		ok, err := th.Allow(context.Background(), "k", 0)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestMemoryThrottle_ConcurrentSingleWinner(t *testing.T) {
	th := NewMemoryThrottle()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := th.Allow(context.Background(), "sign-in:10.0.0.1", time.Minute)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, allowed)
}

func TestRedisThrottle_BackendError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	_, err := NewRedisThrottle(client, "hotel:cooldown:").Allow(context.Background(), "k", time.Second)
	assert.ErrorIs(t, err, ErrBackend)
}
