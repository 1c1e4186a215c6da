package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/utils"
)

// AccessValidator decides whether a user holds the grant for an operation code.
type AccessValidator interface {
	ValidateAccess(ctx context.Context, u *user.User, opCode string) error
}

type AccessMiddleware struct {
	validator AccessValidator
	logger    logger.Interface
}

func NewAccessMiddleware(validator AccessValidator, log logger.Interface) *AccessMiddleware {
	return &AccessMiddleware{
		validator: validator,
		logger:    log,
	}
}

// Require gates a route behind opCode. It must run after RequireAuth.
func (m *AccessMiddleware) Require(opCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewCredentialsInvalidError())
			c.Abort()
			return
		}

		if err := m.validator.ValidateAccess(c.Request.Context(), u, opCode); err != nil {
			if !errors.IsAppError(err) {
				m.logger.Errorw("access check failed", "user_id", u.ID(), "op_code", opCode, "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
