package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/services/sanitize"
	"github.com/orris-inc/warden/internal/shared/utils"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	users     userService
	resolver  transactionResolver
	sanitizer sanitize.TextSanitizer
	logger    logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users userService, resolver transactionResolver, sanitizer sanitize.TextSanitizer, log logger.Interface) *UserHandler {
	return &UserHandler{
		users:     users,
		resolver:  resolver,
		sanitizer: sanitizer,
		logger:    log.Named("user.handler"),
	}
}

// CreateUser handles POST /users. The route is public, so the row is
// attributed to the system login.
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.SaveUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.SaveUserRequest
	if !bindJSON(c, &req) {
		h.logger.Warnw("invalid request body for create user", "ip", c.ClientIP())
		return
	}

	caller := dto.Caller{OriginIP: c.ClientIP(), Login: constants.SystemLogin}
	u, err := h.users.Create(c.Request.Context(), req.ToCommand(h.sanitizer, caller))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToUserResponse(u), "User created successfully")
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserResponse(u))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	q := utils.ParseListQuery(c, "username", "email").Normalize()

	users, err := h.users.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.ToUserResponses(users), len(users), q.Skip, q.Limit)
}

// UpdateUser handles PUT /users/:id. The password is re-hashed.
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Param user body dto.SaveUserRequest true "User"
// @Success 200 {object} utils.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SaveUserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Update(c.Request.Context(), id, req.ToCommand(h.sanitizer, callerFrom(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", dto.ToUserResponse(u))
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} dto.DetailResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DetailResponse{Detail: "Object USER was deleted"})
}

// UserTransactions handles GET /users/:id/transactions
func (h *UserHandler) UserTransactions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.users.Get(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondGrants(c, id)
}

// MyTransactions handles GET /users/me/transactions
// @Summary Transactions granted to the caller
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.TransactionResponse}}
// @Failure 401 {object} utils.APIResponse
// @Router /users/me/transactions [get]
func (h *UserHandler) MyTransactions(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewCredentialsInvalidError())
		return
	}

	h.respondGrants(c, u.ID())
}

func (h *UserHandler) respondGrants(c *gin.Context, userID uint) {
	txs, err := h.resolver.ResolveAuthorizedTransactions(c.Request.Context(), userID, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if txs == nil {
		txs = []*access.Transaction{}
	}

	items := dto.ToTransactionResponses(txs)
	utils.ListSuccessResponse(c, items, len(items), 0, len(items))
}
