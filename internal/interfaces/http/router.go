package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/interfaces/http/routes"
)

// rateLimitWindow is the fixed window used by the IP rate limiter. The
// configured request budget applies per window.
const rateLimitWindow = time.Minute

// Router owns the gin engine and registers all route groups.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(container.log))
	engine.Use(middleware.CORS(container.cfg.CORS.AllowedOrigins))

	return &Router{
		engine:    engine,
		container: container,
	}
}

// SetupRoutes registers the health endpoint and every route group.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	c := r.container

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.auth,
		RateLimiter: c.rateLimiter,
	})

	routes.SetupClientRoutes(r.engine, &routes.ClientRouteConfig{
		ClientHandler:        c.hdlrs.client,
		AuthMiddleware:       c.authMiddleware,
		PrincipalMiddleware:  c.principalMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAreaRoutes(r.engine, &routes.AreaRouteConfig{
		AreaHandler:          c.hdlrs.area,
		AuthMiddleware:       c.authMiddleware,
		PrincipalMiddleware:  c.principalMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupProjectRoutes(r.engine, &routes.ProjectRouteConfig{
		ProjectHandler:       c.hdlrs.project,
		AuthMiddleware:       c.authMiddleware,
		PrincipalMiddleware:  c.principalMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupFindingRoutes(r.engine, &routes.FindingRouteConfig{
		FindingHandler:       c.hdlrs.finding,
		AuthMiddleware:       c.authMiddleware,
		PrincipalMiddleware:  c.principalMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.user,
		AuthMiddleware:       c.authMiddleware,
		PrincipalMiddleware:  c.principalMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupSettingRoutes(r.engine, &routes.SettingRouteConfig{
		SettingHandler:       c.hdlrs.setting,
		AuthMiddleware:       c.authMiddleware,
		PrincipalMiddleware:  c.principalMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine exposes the underlying engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
