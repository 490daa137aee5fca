package routes

import (
	"github.com/gin-gonic/gin"

	settinghandlers "shieldtrack/internal/interfaces/http/handlers/setting"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/constants"
)

// SettingRouteConfig holds dependencies for platform setting routes.
type SettingRouteConfig struct {
	SettingHandler       *settinghandlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes configures platform-wide SMTP setting routes.
func SetupSettingRoutes(engine *gin.Engine, cfg *SettingRouteConfig) {
	settings := engine.Group("/settings")
	settings.Use(cfg.AuthMiddleware.RequireAuth())
	settings.Use(cfg.PrincipalMiddleware.ResolvePrincipal())
	{
		settings.GET("/smtp",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceSettings, constants.ActionRead),
			cfg.SettingHandler.GetSMTPSettings)
		settings.PUT("/smtp",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceSettings, constants.ActionWrite),
			cfg.SettingHandler.UpdateSMTPSettings)
		settings.POST("/smtp/test",
			cfg.PermissionMiddleware.RequirePermission(constants.ResourceSettings, constants.ActionWrite),
			cfg.SettingHandler.SendTestEmail)
	}
}
