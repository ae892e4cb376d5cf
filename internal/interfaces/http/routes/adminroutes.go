package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/infrastructure/permission"
	adminHandlers "github.com/folio-hq/folio/internal/interfaces/http/handlers/admin"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminHandler         *adminHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes. Every route is checked
// against the casbin policy under the admin/ object namespace.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())

	read := func(object string) gin.HandlerFunc {
		return cfg.PermissionMiddleware.RequirePermission(permission.ObjectAdmin+"/"+object, permission.ActionRead)
	}
	write := func(object string) gin.HandlerFunc {
		return cfg.PermissionMiddleware.RequirePermission(permission.ObjectAdmin+"/"+object, permission.ActionWrite)
	}

	admin.GET("/statistics", read("statistics"), cfg.AdminHandler.GetStatistics)

	admin.GET("/users", read("users"), cfg.AdminHandler.ListUsers)
	admin.GET("/users/:id", read("users"), cfg.AdminHandler.GetUserDetails)
	admin.PUT("/users/:id/status", write("users"), cfg.AdminHandler.UpdateUserStatus)

	admin.GET("/analytics/subscriptions", read("analytics"), cfg.AdminHandler.GetSubscriptionAnalytics)
	admin.GET("/system/health", read("system"), cfg.AdminHandler.GetSystemHealth)
}
