package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

// CRUDHandler is the handler surface of one entity resource.
type CRUDHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// AccessRouteConfig holds dependencies for the grant graph resources.
type AccessRouteConfig struct {
	RoleHandler          CRUDHandler
	TransactionHandler   CRUDHandler
	AssignmentHandler    CRUDHandler
	AuthorizationHandler CRUDHandler
	AuthMiddleware       *middleware.AuthMiddleware
	AccessMiddleware     *middleware.AccessMiddleware
}

// SetupAccessRoutes configures /role, /transaction, /assignment and /authorization.
func SetupAccessRoutes(engine *gin.Engine, cfg *AccessRouteConfig) {
	auth := cfg.AuthMiddleware.RequireAuth()

	setupCRUD(engine.Group("/role", auth), cfg.RoleHandler, cfg.AccessMiddleware, opcode.Role)
	setupCRUD(engine.Group("/transaction", auth), cfg.TransactionHandler, cfg.AccessMiddleware, opcode.Transaction)
	setupCRUD(engine.Group("/assignment", auth), cfg.AssignmentHandler, cfg.AccessMiddleware, opcode.Assignment)
	setupCRUD(engine.Group("/authorization", auth), cfg.AuthorizationHandler, cfg.AccessMiddleware, opcode.Authorization)
}

func setupCRUD(group *gin.RouterGroup, h CRUDHandler, access *middleware.AccessMiddleware, codes opcode.Actions) {
	group.POST("", access.Require(codes.Create), h.Create)
	group.GET("", access.Require(codes.List), h.List)
	group.GET("/:id", access.Require(codes.View), h.Get)
	group.PUT("/:id", access.Require(codes.Update), h.Update)
	group.DELETE("/:id", access.Require(codes.Delete), h.Delete)
}
