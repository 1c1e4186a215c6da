package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/utils"
)

// CurrentUserResolver turns a bearer token into the user it names.
type CurrentUserResolver interface {
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}

type AuthMiddleware struct {
	users  CurrentUserResolver
	logger logger.Interface
}

func NewAuthMiddleware(users CurrentUserResolver, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		users:  users,
		logger: log,
	}
}

// RequireAuth loads the caller from the store on every request and stores
// it in the gin context under constants.ContextKeyUser.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewCredentialsInvalidError())
			c.Abort()
			return
		}

		u, err := m.users.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if !errors.IsAppError(err) {
				m.logger.Errorw("failed to resolve current user", "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, u)
		c.Set(constants.ContextKeyUserID, u.ID())

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}
