package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/site/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
	"github.com/folio-hq/folio/internal/shared/version"
)

type getSiteUseCase interface {
	Execute(ctx context.Context, tenant *account.Account) (*dto.SiteDTO, error)
	GetSection(ctx context.Context, tenant *account.Account, section string) (any, error)
}

// SiteHandler serves the public site of the tenant addressed by the Host
// header, and the platform banner on every other host.
type SiteHandler struct {
	getSiteUseCase getSiteUseCase
	logger         logger.Interface
}

func NewSiteHandler(getSiteUC getSiteUseCase, logger logger.Interface) *SiteHandler {
	return &SiteHandler{
		getSiteUseCase: getSiteUC,
		logger:         logger,
	}
}

// Root handles GET /
func (h *SiteHandler) Root(c *gin.Context) {
	if middleware.GetRequestClass(c).IsTenant() {
		h.GetSite(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Portfolio Platform API",
		"version": version.API,
		"endpoints": gin.H{
			"auth":      "/api/auth",
			"portfolio": "/api/*",
		},
	})
}

// GetSite handles GET /site on tenant hosts.
func (h *SiteHandler) GetSite(c *gin.Context) {
	tenant, ok := middleware.GetTenant(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTenantNotFoundError())
		return
	}

	site, err := h.getSiteUseCase.Execute(c.Request.Context(), tenant)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", site)
}

// GetSection handles GET /site/:section on tenant hosts.
func (h *SiteHandler) GetSection(c *gin.Context) {
	tenant, ok := middleware.GetTenant(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTenantNotFoundError())
		return
	}

	data, err := h.getSiteUseCase.GetSection(c.Request.Context(), tenant, c.Param("section"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", data)
}
