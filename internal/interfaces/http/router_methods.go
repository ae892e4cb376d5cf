package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/folio-hq/folio/docs"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes. Tenant resolution runs globally so
// "/" can serve either the platform banner or a tenant's site.
func (r *Router) SetupRoutes() {
	cfg := r.cfg

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.tenantMiddleware.Classify())
	r.engine.Use(middleware.Metrics(r.metrics))
	r.engine.Use(r.tenantMiddleware.ResolveTenant())

	if cfg.Server.Mode == gin.DebugMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Metrics.Enabled {
		r.engine.GET(cfg.Metrics.Path, gin.WrapH(r.metrics.Handler()))
	}
	if cfg.Storage.Type == "local" {
		r.engine.Static("/uploads", cfg.Storage.BasePath)
	}

	api := r.engine.Group("/api")
	api.Use(r.rateLimiter.Limit())

	r.setupAuthRoutes(api)
	r.setupResourceRoutes(api)
	r.setupSubscriptionRoutes(api)
	r.setupUploadRoutes(api)
	r.setupAdminRoutes(api)
	r.setupSiteRoutes()
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) setupResourceRoutes(api *gin.RouterGroup) {
	routes.SetupResourceRoutes(api, &routes.ResourceRouteConfig{
		Handlers:        r.hdlrs.resourceHandlers,
		AuthMiddleware:  r.authMiddleware,
		QuotaMiddleware: r.quotaMiddleware,
	})
}

func (r *Router) setupSubscriptionRoutes(api *gin.RouterGroup) {
	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.hdlrs.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})
}

func (r *Router) setupUploadRoutes(api *gin.RouterGroup) {
	routes.SetupUploadRoutes(api, &routes.UploadRouteConfig{
		UploadHandler:  r.hdlrs.uploadHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) setupAdminRoutes(api *gin.RouterGroup) {
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:         r.hdlrs.adminHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

func (r *Router) setupSiteRoutes() {
	routes.SetupSiteRoutes(r.engine, &routes.SiteRouteConfig{
		SiteHandler:   r.hdlrs.siteHandler,
		HealthHandler: r.hdlrs.healthHandler,
	})
}
