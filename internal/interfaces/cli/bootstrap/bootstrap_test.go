package bootstrap

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/infrastructure/config"
	"github.com/orris-inc/warden/internal/infrastructure/ratelimit"
	sharedConfig "github.com/orris-inc/warden/internal/shared/config"
	"github.com/orris-inc/warden/internal/shared/logger"
)

func TestGinMode(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"production", "release"},
		{"prod", "release"},
		{"test", "test"},
		{"development", "debug"},
		{"", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, GinMode(tt.env))
		})
	}
}

func TestFlags_EnvironmentPrefersEnvVar(t *testing.T) {
	f := &Flags{Env: "development"}
	t.Setenv("ENV", "")
	assert.Equal(t, "development", f.Environment())

	t.Setenv("ENV", "production")
	assert.Equal(t, "production", f.Environment())
}

func TestLoginLimiter(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()

	limiter, closeFn := LoginLimiter(ctx, config.Config{}, log)
	assert.Nil(t, limiter)
	closeFn()

	cfg := config.Config{Redis: sharedConfig.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}}
	limiter, closeFn = LoginLimiter(ctx, cfg, log)
	assert.Nil(t, limiter)
	closeFn()

	mr := miniredis.RunT(t)
	cfg.Redis.Host = mr.Host()
	cfg.Redis.Port = portOf(t, mr)
	limiter, closeFn = LoginLimiter(ctx, cfg, log)
	defer closeFn()
	require.NotNil(t, limiter)

	allowed, err := limiter.Allow(ctx, "login:127.0.0.1", ratelimit.RateLimitConfig{RequestsPerMinute: 1})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func portOf(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
