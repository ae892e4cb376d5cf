package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/interfaces/http/handlers"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures the caller's subscription routes.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.GET("/current", cfg.SubscriptionHandler.GetCurrent)
		subscriptions.GET("/history", cfg.SubscriptionHandler.GetHistory)
		subscriptions.GET("/plans", cfg.SubscriptionHandler.GetPlans)
		subscriptions.POST("/upgrade", cfg.SubscriptionHandler.Upgrade)
		subscriptions.POST("/cancel", cfg.SubscriptionHandler.Cancel)
		subscriptions.POST("/reactivate", cfg.SubscriptionHandler.Reactivate)
		subscriptions.GET("/limits/:resourceType", cfg.SubscriptionHandler.GetLimits)
	}
}
