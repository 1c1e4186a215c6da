package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/infrastructure/ratelimit"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/utils"
)

const loginLimitKeyPrefix = "login:"

// LoginRateLimit throttles token requests per client address as gin resolves
// it, so forwarding headers count only from trusted proxies. A nil limiter
// disables it; limiter errors let the request through.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := loginLimitKeyPrefix + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			log.Warnw("login rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("login rate limit exceeded", "key", key)
			utils.ErrorResponse(c, http.StatusTooManyRequests, errors.ErrorTypeTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
