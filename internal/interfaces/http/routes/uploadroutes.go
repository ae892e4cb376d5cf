package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/interfaces/http/handlers"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
)

// UploadRouteConfig holds dependencies for upload routes.
type UploadRouteConfig struct {
	UploadHandler  *handlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUploadRoutes(api *gin.RouterGroup, cfg *UploadRouteConfig) {
	upload := api.Group("/upload")
	upload.Use(cfg.AuthMiddleware.RequireAuth())
	{
		upload.POST("/single", cfg.UploadHandler.Single)
		upload.POST("/multiple", cfg.UploadHandler.Multiple)
		upload.POST("/portfolio", cfg.UploadHandler.Portfolio)
	}
}
