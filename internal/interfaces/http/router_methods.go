package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/orris-inc/warden/docs"
	"github.com/orris-inc/warden/internal/infrastructure/ratelimit"
	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.ProcessTime())
	r.engine.Use(middleware.APIVersion())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders(r.cfg.Server.IsDebug(), "/swagger/"))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/", r.handlers.health.Welcome)
	r.engine.GET("/health", r.handlers.health.HealthCheck)

	loginRate := ratelimit.RateLimitConfig{
		RequestsPerMinute: r.cfg.Auth.LoginRate.PerMinute,
		RequestsPerHour:   r.cfg.Auth.LoginRate.PerHour,
	}
	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.handlers.auth,
		RateLimit:   middleware.LoginRateLimit(r.loginLimiter, loginRate, r.logger),
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:      r.handlers.user,
		AuthMiddleware:   r.authMiddleware,
		AccessMiddleware: r.accessMiddleware,
	})

	routes.SetupAccessRoutes(r.engine, &routes.AccessRouteConfig{
		RoleHandler:          r.handlers.role,
		TransactionHandler:   r.handlers.transaction,
		AssignmentHandler:    r.handlers.assignment,
		AuthorizationHandler: r.handlers.authorization,
		AuthMiddleware:       r.authMiddleware,
		AccessMiddleware:     r.accessMiddleware,
	})
}
