// Package admin serves the platform operator surface under /api/admin.
package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/application/admin/usecases"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
	"github.com/folio-hq/folio/internal/shared/validation"
)

type getStatisticsUseCase interface {
	Execute(ctx context.Context) (*dto.StatisticsDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListUsersCommand) (*dto.UserListDTO, error)
}

type getUserDetailsUseCase interface {
	Execute(ctx context.Context, accountID uint) (*dto.UserDetailsDTO, error)
}

type updateUserStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserStatusCommand) (*dto.UserStatusDTO, error)
}

type getSubscriptionAnalyticsUseCase interface {
	Execute(ctx context.Context, days int) (*dto.SubscriptionAnalyticsDTO, error)
}

type getSystemHealthUseCase interface {
	Execute(ctx context.Context) *dto.SystemHealthDTO
}

// Handler serves the admin dashboard. Routes are guarded by RequireAuth and
// the admin permission before reaching it.
type Handler struct {
	statisticsUseCase   getStatisticsUseCase
	listUsersUseCase    listUsersUseCase
	userDetailsUseCase  getUserDetailsUseCase
	userStatusUseCase   updateUserStatusUseCase
	analyticsUseCase    getSubscriptionAnalyticsUseCase
	systemHealthUseCase getSystemHealthUseCase
	logger              logger.Interface
}

func NewHandler(
	statisticsUC getStatisticsUseCase,
	listUsersUC listUsersUseCase,
	userDetailsUC getUserDetailsUseCase,
	userStatusUC updateUserStatusUseCase,
	analyticsUC getSubscriptionAnalyticsUseCase,
	systemHealthUC getSystemHealthUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		statisticsUseCase:   statisticsUC,
		listUsersUseCase:    listUsersUC,
		userDetailsUseCase:  userDetailsUC,
		userStatusUseCase:   userStatusUC,
		analyticsUseCase:    analyticsUC,
		systemHealthUseCase: systemHealthUC,
		logger:              logger,
	}
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// GetStatistics handles GET /api/admin/statistics
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.statisticsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// ListUsers handles GET /api/admin/users
func (h *Handler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		Search:       c.Query("search"),
		Subscription: c.Query("subscription"),
		Status:       c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUserDetails handles GET /api/admin/users/:id
func (h *Handler) GetUserDetails(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	details, err := h.userDetailsUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", details)
}

// UpdateUserStatus handles PUT /api/admin/users/:id/status
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.FromBindError(err))
		return
	}

	result, err := h.userStatusUseCase.Execute(c.Request.Context(), usecases.UpdateUserStatusCommand{
		AccountID: id,
		IsActive:  *req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("user status changed by admin", "target_id", id, "is_active", *req.IsActive)
	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// GetSubscriptionAnalytics handles GET /api/admin/analytics/subscriptions
func (h *Handler) GetSubscriptionAnalytics(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("days must be a positive integer"))
			return
		}
		days = n
	}

	analytics, err := h.analyticsUseCase.Execute(c.Request.Context(), days)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", analytics)
}

// GetSystemHealth handles GET /api/admin/system/health
func (h *Handler) GetSystemHealth(c *gin.Context) {
	health := h.systemHealthUseCase.Execute(c.Request.Context())

	status := http.StatusOK
	if !usecases.Healthy(health) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, utils.APIResponse{
		Success: status == http.StatusOK,
		Data:    health,
	})
}
