// Package http assembles the gin engine: repositories, services, handlers
// and the route table.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/infrastructure/config"
	"github.com/orris-inc/warden/internal/infrastructure/ratelimit"
	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	handlers         *httpHandlers
	authMiddleware   *middleware.AuthMiddleware
	accessMiddleware *middleware.AccessMiddleware
	loginLimiter     ratelimit.RateLimiter
	logger           logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies. limiter may be
// nil, which disables login throttling.
func NewRouter(gdb *gorm.DB, cfg *config.Config, limiter ratelimit.RateLimiter, log logger.Interface) (*Router, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}

	repos := newRepositories(gdb)
	svc := newServices(gdb, repos, cfg, log)

	return &Router{
		engine:           engine,
		cfg:              cfg,
		handlers:         newHandlers(svc, sqlDB, log),
		authMiddleware:   middleware.NewAuthMiddleware(svc.auth, log),
		accessMiddleware: middleware.NewAccessMiddleware(svc.resolver, log),
		loginLimiter:     limiter,
		logger:           log,
	}, nil
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
