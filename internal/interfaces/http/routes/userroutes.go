package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/interfaces/http/handlers"
	"github.com/orris-inc/warden/internal/interfaces/http/middleware"
	"github.com/orris-inc/warden/internal/shared/opcode"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler      *handlers.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
	AccessMiddleware *middleware.AccessMiddleware
}

// SetupUserRoutes configures user management routes. Registration is public.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	engine.POST("/users", cfg.UserHandler.CreateUser)

	require := cfg.AccessMiddleware.Require
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", require(opcode.UserList), cfg.UserHandler.ListUsers)

		// Named endpoints before /:id
		users.GET("/me/transactions", cfg.UserHandler.MyTransactions)

		users.GET("/:id", require(opcode.UserView), cfg.UserHandler.GetUser)
		users.PUT("/:id", require(opcode.UserUpdate), cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", require(opcode.UserDelete), cfg.UserHandler.DeleteUser)
		users.GET("/:id/transactions", require(opcode.UserTransactionsGrants), cfg.UserHandler.UserTransactions)
	}
}
