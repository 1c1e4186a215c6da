package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/shared/biztime"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name    string
		config  RateLimitConfig
		allowed int
	}{
		{name: "per minute", config: RateLimitConfig{RequestsPerMinute: 5}, allowed: 5},
		{name: "per hour", config: RateLimitConfig{RequestsPerHour: 3}, allowed: 3},
		{name: "per day", config: RateLimitConfig{RequestsPerDay: 2}, allowed: 2},
		{name: "tightest window wins", config: RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 4}, allowed: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := setupTestRedis(t)
			limiter := NewRedisRateLimiter(client)
			ctx := context.Background()

			for i := 0; i < tt.allowed; i++ {
				ok, err := limiter.Allow(ctx, "login:10.0.0.1", tt.config)
				require.NoError(t, err)
				assert.True(t, ok, "request %d should be allowed", i+1)
			}

			ok, err := limiter.Allow(ctx, "login:10.0.0.1", tt.config)
			require.NoError(t, err)
			assert.False(t, ok, "request over the limit should be denied")
		})
	}
}

func TestRedisRateLimiter_ZeroLimitsAlwaysAllow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	for i := 0; i < 20; i++ {
		ok, err := limiter.Allow(context.Background(), "k", RateLimitConfig{})
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	cfg := RateLimitConfig{RequestsPerMinute: 1}

	ok, err := limiter.Allow(ctx, "a", cfg)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "b", cfg)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "a", cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRateLimiter_SlidingWindow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	cfg := RateLimitConfig{RequestsPerMinute: 2}

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	restore := biztime.Freeze(start)
	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "k", cfg)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	restore()

	restore = biztime.Freeze(start.Add(61 * time.Second))
	defer restore()

	ok, err := limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.True(t, ok, "old attempts should have left the window")

	used, err := limiter.GetUsed(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	cfg := RateLimitConfig{RequestsPerMinute: 1, RequestsPerHour: 5}

	_, err := limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 2)

	require.NoError(t, limiter.Reset(ctx, "k"))
	assert.Empty(t, mr.Keys())

	ok, err := limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimiter_ErrorsWhenRedisDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", RateLimitConfig{RequestsPerMinute: 1})
	assert.Error(t, err)
}
