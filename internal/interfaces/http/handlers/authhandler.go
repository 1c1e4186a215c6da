package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/utils"
)

type AuthHandler struct {
	auth   loginService
	logger logger.Interface
}

func NewAuthHandler(auth loginService, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: log.Named("auth.handler"),
	}
}

// Token handles POST /auth/token. It accepts the OAuth2 password form as
// well as JSON and answers with a bare token document, not the envelope.
// @Summary Issue an access token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(constants.ErrMsgValidationFailed, err.Error()))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.ToTokenResponse(result))
}
