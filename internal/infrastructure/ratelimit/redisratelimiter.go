package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/warden/internal/shared/biztime"
)

const keyPrefix = "ratelimit:"

// RedisRateLimiter keeps one sorted set per key and window, scored by the
// attempt's unix nanoseconds.
type RedisRateLimiter struct {
	client redis.UniversalClient
}

func NewRedisRateLimiter(client redis.UniversalClient) RateLimiter {
	return &RedisRateLimiter{client: client}
}

type window struct {
	span  time.Duration
	limit int
}

func (c RateLimitConfig) windows() []window {
	all := []window{
		{time.Minute, c.RequestsPerMinute},
		{time.Hour, c.RequestsPerHour},
		{24 * time.Hour, c.RequestsPerDay},
	}
	enabled := all[:0]
	for _, w := range all {
		if w.limit > 0 {
			enabled = append(enabled, w)
		}
	}
	return enabled
}

// Allow records one attempt for key in every enabled window and reports
// whether all windows are still under their limit. Denied attempts count
// too.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	now := biztime.NowUTC()
	allowed := true
	for _, w := range config.windows() {
		before, err := l.record(ctx, key, w.span, now)
		if err != nil {
			return false, err
		}
		allowed = allowed && before < int64(w.limit)
	}
	return allowed, nil
}

// record prunes expired attempts, adds this one and returns how many were
// inside the window before it.
func (l *RedisRateLimiter) record(ctx context.Context, key string, span time.Duration, now time.Time) (int64, error) {
	setKey := windowKey(key, span)
	stamp := now.UnixNano()

	var count *redis.IntCmd
	_, err := l.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, setKey, "0", strconv.FormatInt(now.Add(-span).UnixNano(), 10))
		count = p.ZCard(ctx, setKey)
		p.ZAdd(ctx, setKey, redis.Z{Score: float64(stamp), Member: strconv.FormatInt(stamp, 10) + "-" + uuid.NewString()})
		p.Expire(ctx, setKey, span+time.Minute)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("record attempt in %s: %w", setKey, err)
	}
	return count.Val(), nil
}

// GetUsed returns the attempts recorded for key inside window.
func (l *RedisRateLimiter) GetUsed(ctx context.Context, key string, span time.Duration) (int64, error) {
	setKey := windowKey(key, span)
	cutoff := strconv.FormatInt(biztime.NowUTC().Add(-span).UnixNano(), 10)

	var count *redis.IntCmd
	_, err := l.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, setKey, "0", cutoff)
		count = p.ZCard(ctx, setKey)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count attempts in %s: %w", setKey, err)
	}
	return count.Val(), nil
}

// Reset forgets every window kept for key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	iter := l.client.Scan(ctx, 0, keyPrefix+key+":*", 0).Iterator()
	var stale []string
	for iter.Next(ctx) {
		stale = append(stale, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan windows of %s: %w", key, err)
	}
	if len(stale) == 0 {
		return nil
	}
	if err := l.client.Del(ctx, stale...).Err(); err != nil {
		return fmt.Errorf("drop windows of %s: %w", key, err)
	}
	return nil
}

func windowKey(key string, span time.Duration) string {
	return keyPrefix + key + ":" + span.String()
}
