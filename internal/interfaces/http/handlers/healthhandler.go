package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/shared/biztime"
)

type HealthHandler struct {
	environment string
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   biztime.NowUTC(),
		"environment": h.environment,
	})
}

// NotFound answers unmatched routes.
func (h *HealthHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Route not found",
		"path":    c.Request.URL.Path,
	})
}
