package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for the token endpoint.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimit   gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/token", cfg.RateLimit, cfg.AuthHandler.Token)
	}
}
