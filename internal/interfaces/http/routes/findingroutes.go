package routes

import (
	"github.com/gin-gonic/gin"

	findinghandlers "shieldtrack/internal/interfaces/http/handlers/finding"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/constants"
)

// FindingRouteConfig holds dependencies for finding routes.
type FindingRouteConfig struct {
	FindingHandler       *findinghandlers.FindingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupFindingRoutes configures finding routes. Unlike projects, closing a
// finding is an ordinary write; any role that can edit findings can close them.
func SetupFindingRoutes(engine *gin.Engine, cfg *FindingRouteConfig) {
	findings := engine.Group("/findings")
	findings.Use(cfg.AuthMiddleware.RequireAuth())
	findings.Use(cfg.PrincipalMiddleware.ResolvePrincipal())
	{
		findings.POST("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionWrite),
			cfg.FindingHandler.CreateFinding)
		findings.GET("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionRead),
			cfg.FindingHandler.ListFindings)

		findings.POST("/:id/confirm",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionWrite),
			cfg.FindingHandler.ConfirmFinding)
		findings.POST("/:id/close",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionWrite),
			cfg.FindingHandler.CloseFinding)
		findings.GET("/:id/html",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionRead),
			cfg.FindingHandler.RenderFindingHTML)

		findings.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionRead),
			cfg.FindingHandler.GetFinding)
		findings.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionWrite),
			cfg.FindingHandler.UpdateFinding)
		findings.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceFinding, constants.ActionDelete),
			cfg.FindingHandler.DeleteFinding)
	}
}
