package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/utils"
	"github.com/orris-inc/warden/internal/shared/version"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	store  Pinger
	logger logger.Interface
}

func NewHealthHandler(store Pinger, log logger.Interface) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: log.Named("health.handler"),
	}
}

// Welcome handles GET /
func (h *HealthHandler) Welcome(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Welcome to the warden access control API", gin.H{
		"version":     version.String(),
		"api_version": middleware.APIVersionFrom(c),
	})
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "warden",
		"version": version.String(),
	})
}
