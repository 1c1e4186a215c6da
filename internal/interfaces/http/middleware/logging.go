package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/logger"
)

// Logger emits one access line per request once the chain has finished.
// Level follows the status class: 5xx error, 4xx warn, else debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := accessFields(c, status, time.Since(began))

		switch {
		case status >= http.StatusInternalServerError:
			log.Errorw("request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}

func accessFields(c *gin.Context, status int, took time.Duration) []any {
	fields := make([]any, 0, 22)
	fields = append(fields,
		"method", c.Request.Method,
		"route", c.FullPath(),
		"path", c.Request.URL.Path,
		"status", status,
		"latency", took,
		"client_ip", c.ClientIP(),
		"bytes", c.Writer.Size(),
	)
	if q := c.Request.URL.RawQuery; q != "" {
		fields = append(fields, "query", q)
	}
	if ua := c.Request.UserAgent(); ua != "" {
		fields = append(fields, "user_agent", ua)
	}
	if rid := c.GetString(constants.ContextKeyRequestID); rid != "" {
		fields = append(fields, "request_id", rid)
	}
	if uid, ok := c.Get(constants.ContextKeyUserID); ok {
		fields = append(fields, "user_id", uid)
	}
	if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
		fields = append(fields, "error", errs.String())
	}
	return fields
}
