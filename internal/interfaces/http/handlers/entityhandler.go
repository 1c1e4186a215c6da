package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/mapper"
	"github.com/orris-inc/warden/internal/shared/utils"
)

// EntityHandler serves the five CRUD routes of one entity. R is the request
// body type; convert turns it into a new entity attributed to the caller.
type EntityHandler[E any, R any] struct {
	service    EntityService[E]
	convert    func(req *R, caller dto.Caller) (E, error)
	present    func(E) any
	filterKeys []string
	logger     logger.Interface
}

func NewEntityHandler[E any, R any](
	service EntityService[E],
	convert func(req *R, caller dto.Caller) (E, error),
	present func(E) any,
	log logger.Interface,
	filterKeys ...string,
) *EntityHandler[E, R] {
	return &EntityHandler[E, R]{
		service:    service,
		convert:    convert,
		present:    present,
		filterKeys: filterKeys,
		logger:     log.Named(strings.ToLower(service.Entity()) + ".handler"),
	}
}

// Create handles POST
func (h *EntityHandler[E, R]) Create(c *gin.Context) {
	var req R
	if !bindJSON(c, &req) {
		return
	}

	entity, err := h.convert(&req, callerFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.present(created), fmt.Sprintf("%s created successfully", h.service.Entity()))
}

// Get handles GET /:id
func (h *EntityHandler[E, R]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.present(entity))
}

// List handles GET with skip/limit and the handler's filter keys
func (h *EntityHandler[E, R]) List(c *gin.Context) {
	q := utils.ParseListQuery(c, h.filterKeys...).Normalize()

	items, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, mapper.MapSlice(items, h.present), len(items), q.Skip, q.Limit)
}

// Update handles PUT /:id as a full replacement
func (h *EntityHandler[E, R]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req R
	if !bindJSON(c, &req) {
		return
	}

	entity, err := h.convert(&req, callerFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, fmt.Sprintf("%s updated successfully", h.service.Entity()), h.present(updated))
}

// Delete handles DELETE /:id. The body is a bare {"detail": ...} object.
func (h *EntityHandler[E, R]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DetailResponse{
		Detail: fmt.Sprintf("Object %s was deleted", strings.ToUpper(h.service.Entity())),
	})
}
