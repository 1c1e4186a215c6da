// Package ratelimit throttles callers with sliding windows kept in redis.
package ratelimit

import (
	"context"
	"time"
)

// RateLimitConfig sets the ceiling per window; zero disables a window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	GetUsed(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
