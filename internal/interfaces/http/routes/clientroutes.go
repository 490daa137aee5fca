package routes

import (
	"github.com/gin-gonic/gin"

	clienthandlers "shieldtrack/internal/interfaces/http/handlers/client"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/constants"
)

// ClientRouteConfig holds dependencies for client management routes.
type ClientRouteConfig struct {
	ClientHandler        *clienthandlers.ClientHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupClientRoutes configures client management routes.
func SetupClientRoutes(engine *gin.Engine, cfg *ClientRouteConfig) {
	clients := engine.Group("/clients")
	clients.Use(cfg.AuthMiddleware.RequireAuth())
	clients.Use(cfg.PrincipalMiddleware.ResolvePrincipal())
	{
		clients.POST("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceClient, constants.ActionWrite),
			cfg.ClientHandler.CreateClient)
		clients.GET("",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceClient, constants.ActionRead),
			cfg.ClientHandler.ListClients)

		clients.POST("/:id/deactivate",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceClient, constants.ActionWrite),
			cfg.ClientHandler.DeactivateClient)

		clients.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceClient, constants.ActionRead),
			cfg.ClientHandler.GetClient)
		clients.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceClient, constants.ActionWrite),
			cfg.ClientHandler.UpdateClient)
		clients.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceClient, constants.ActionDelete),
			cfg.ClientHandler.DeleteClient)
	}
}
