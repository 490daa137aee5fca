package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "shieldtrack/internal/interfaces/http/handlers/project"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/constants"
)

// ProjectRouteConfig holds dependencies for project routes.
type ProjectRouteConfig struct {
	ProjectHandler       *projecthandlers.ProjectHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupProjectRoutes configures project routes. Closing a project is its own
// action because it is restricted to a narrower role set than ordinary writes.
func SetupProjectRoutes(engine *gin.Engine, cfg *ProjectRouteConfig) {
	projects := engine.Group("/projects")
	projects.Use(cfg.AuthMiddleware.RequireAuth())
	projects.Use(cfg.PrincipalMiddleware.ResolvePrincipal())
	{
		projects.POST("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionWrite),
			cfg.ProjectHandler.CreateProject)
		projects.GET("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionRead),
			cfg.ProjectHandler.ListProjects)

		projects.POST("/:id/close",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionClose),
			cfg.ProjectHandler.CloseProject)
		projects.POST("/:id/archive",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionWrite),
			cfg.ProjectHandler.ArchiveProject)

		projects.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionRead),
			cfg.ProjectHandler.GetProject)
		projects.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionWrite),
			cfg.ProjectHandler.UpdateProject)
		projects.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceProject, constants.ActionDelete),
			cfg.ProjectHandler.DeleteProject)
	}
}
