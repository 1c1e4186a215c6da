package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/utils"
)

// callerFrom attributes a write to the authenticated user, or to the
// system login when the route is public.
func callerFrom(c *gin.Context) dto.Caller {
	caller := dto.Caller{
		OriginIP: c.ClientIP(),
		Login:    constants.SystemLogin,
	}
	if u, ok := middleware.CurrentUser(c); ok {
		caller.Login = u.Username()
	}
	return caller
}

func parseID(c *gin.Context) (uint, bool) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid id", c.Param("id")))
	}
	return id, ok
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(constants.ErrMsgValidationFailed, err.Error()))
		return false
	}
	return true
}
