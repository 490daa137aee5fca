package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "shieldtrack/internal/interfaces/http/handlers/user"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/constants"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler          *userhandlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes. DELETE deactivates
// rather than removes, so it is gated as a write.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	users.Use(cfg.PrincipalMiddleware.ResolvePrincipal())
	{
		users.POST("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceUser, constants.ActionWrite),
			cfg.UserHandler.CreateUser)
		users.GET("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceUser, constants.ActionRead),
			cfg.UserHandler.ListUsers)

		users.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceUser, constants.ActionRead),
			cfg.UserHandler.GetUser)
		users.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceUser, constants.ActionWrite),
			cfg.UserHandler.UpdateUser)
		users.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceUser, constants.ActionWrite),
			cfg.UserHandler.DeactivateUser)
	}
}
