package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "shieldtrack/internal/interfaces/http/handlers/auth"
	"shieldtrack/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures the unauthenticated login and refresh routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if cfg.RateLimiter != nil {
		auth.Use(cfg.RateLimiter.Limit())
	}
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
	}
}
