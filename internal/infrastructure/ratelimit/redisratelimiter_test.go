package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	limit := Limit{Requests: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "10.0.0.1", limit)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should pass", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "10.0.0.1", limit)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.False(t, res.RetryAt.IsZero())

	// Other keys have their own budget.
	res, err = limiter.Allow(ctx, "10.0.0.2", limit)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	ctx := context.Background()
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }
	limit := Limit{Requests: 1, Window: time.Minute}

	res, err := limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.WithinDuration(t, base.Add(time.Minute), res.RetryAt, time.Millisecond)

	limiter.now = func() time.Time { return base.Add(61 * time.Second) }
	res, err = limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	limit := Limit{Requests: 1, Window: time.Minute}

	_, err := limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)

	require.NoError(t, limiter.Reset(ctx, "k"))

	res, err := limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_DisabledLimit(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))

	res, err := limiter.Allow(context.Background(), "k", Limit{})
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
