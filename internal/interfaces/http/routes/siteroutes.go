package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/interfaces/http/handlers"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
)

// SiteRouteConfig holds dependencies for the public site and operational
// routes served at the root.
type SiteRouteConfig struct {
	SiteHandler   *handlers.SiteHandler
	HealthHandler *handlers.HealthHandler
}

// SetupSiteRoutes serves the platform banner or the tenant site on "/",
// the tenant site under /site, and the health probe.
func SetupSiteRoutes(engine *gin.Engine, cfg *SiteRouteConfig) {
	engine.GET("/", cfg.SiteHandler.Root)
	engine.GET("/health", cfg.HealthHandler.Health)

	site := engine.Group("/site")
	site.Use(middleware.RequireTenant())
	{
		site.GET("", cfg.SiteHandler.GetSite)
		site.GET("/:section", cfg.SiteHandler.GetSection)
	}

	engine.NoRoute(cfg.HealthHandler.NotFound)
}
