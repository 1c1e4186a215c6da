// Package bootstrap loads configuration and opens shared resources for the
// cobra subcommands.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/config"
	"github.com/orris-inc/warden/internal/infrastructure/database"
	"github.com/orris-inc/warden/internal/infrastructure/ratelimit"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/logger"
)

// Flags are the persistent flags every subcommand shares.
type Flags struct {
	Env        string
	ConfigPath string
}

// Register binds the shared flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// Environment returns the ENV variable when set, otherwise the flag value.
func (f *Flags) Environment() string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return f.Env
}

// Load reads the configuration and initializes the process logger.
func (f *Flags) Load() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(GinMode(f.Environment()), f.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenDatabase connects with the configured driver. The caller closes it
// with database.Close.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.Get(), nil
}

// LoginLimiter returns a redis-backed limiter, or nil when redis is
// disabled or unreachable. The returned close func is never nil.
func LoginLimiter(ctx context.Context, cfg config.Config, log logger.Interface) (ratelimit.RateLimiter, func()) {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, login throttling off")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warnw("redis unreachable, login throttling off", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return nil, func() {}
	}

	log.Infow("redis connected", "addr", cfg.Redis.GetAddr())
	return ratelimit.NewRedisRateLimiter(client), func() {
		if err := client.Close(); err != nil {
			log.Warnw("failed to close redis client", "error", err)
		}
	}
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
