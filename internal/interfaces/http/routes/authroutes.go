package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/interfaces/http/handlers"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication and public lookup routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
		auth.PUT("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UpdateProfile)
		auth.PUT("/change-password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)

		// Public lookups
		auth.GET("/check-subdomain/:subdomain", cfg.AuthHandler.CheckSubdomain)
		auth.GET("/user/:subdomain", cfg.AuthHandler.GetPublicUser)
	}
}
