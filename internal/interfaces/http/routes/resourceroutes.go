package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/interfaces/http/handlers"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
)

// ResourceRouteConfig holds the per-kind handlers and the middleware every
// resource route runs behind.
type ResourceRouteConfig struct {
	Handlers        []handlers.ResourceEndpoints
	AuthMiddleware  *middleware.AuthMiddleware
	QuotaMiddleware *middleware.QuotaMiddleware
}

// SetupResourceRoutes registers /api/<route> for every kind. Singletons get
// GET and PUT on the collection; plan-limited kinds are quota checked on POST.
func SetupResourceRoutes(api *gin.RouterGroup, cfg *ResourceRouteConfig) {
	for _, h := range cfg.Handlers {
		info := h.Info()
		group := api.Group("/" + info.Route)
		group.Use(cfg.AuthMiddleware.RequireAuth())

		if info.Singleton {
			group.GET("", h.List)
			group.PUT("", h.Upsert)
			continue
		}

		group.GET("", h.List)
		if info.SingleFetch {
			group.GET("/:id", h.Get)
		}
		if info.QuotaLimited() {
			group.POST("", cfg.QuotaMiddleware.CheckLimit(info.Kind), h.Create)
		} else {
			group.POST("", h.Create)
		}
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
