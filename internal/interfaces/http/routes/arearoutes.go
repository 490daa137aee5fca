package routes

import (
	"github.com/gin-gonic/gin"

	areahandlers "shieldtrack/internal/interfaces/http/handlers/area"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/constants"
)

// AreaRouteConfig holds dependencies for area management routes.
type AreaRouteConfig struct {
	AreaHandler          *areahandlers.AreaHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAreaRoutes configures area management and assignment routes.
func SetupAreaRoutes(engine *gin.Engine, cfg *AreaRouteConfig) {
	areas := engine.Group("/areas")
	areas.Use(cfg.AuthMiddleware.RequireAuth())
	areas.Use(cfg.PrincipalMiddleware.ResolvePrincipal())
	{
		areas.POST("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionWrite),
			cfg.AreaHandler.CreateArea)
		areas.GET("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionRead),
			cfg.AreaHandler.ListAreas)

		// Assignment endpoints (must come BEFORE the bare /:id routes)
		areas.POST("/:id/assignments",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionWrite),
			cfg.AreaHandler.AssignUser)
		areas.GET("/:id/assignments",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionRead),
			cfg.AreaHandler.ListAssignments)
		areas.DELETE("/:id/assignments/:user_id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionWrite),
			cfg.AreaHandler.RevokeAssignment)

		areas.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionRead),
			cfg.AreaHandler.GetArea)
		areas.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceArea, constants.ActionWrite),
			cfg.AreaHandler.UpdateArea)
	}
}
