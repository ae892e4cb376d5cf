package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/subscription/usecases"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
	"github.com/folio-hq/folio/internal/shared/validation"
)

// SubscriptionHandler serves the caller's subscription lifecycle and the
// plan catalogue.
type SubscriptionHandler struct {
	currentUseCase    getCurrentSubscriptionUseCase
	historyUseCase    getSubscriptionHistoryUseCase
	plansUseCase      getPlansUseCase
	upgradeUseCase    upgradeSubscriptionUseCase
	cancelUseCase     cancelSubscriptionUseCase
	reactivateUseCase reactivateSubscriptionUseCase
	limitsUseCase     checkLimitsUseCase
	logger            logger.Interface
}

func NewSubscriptionHandler(
	currentUC getCurrentSubscriptionUseCase,
	historyUC getSubscriptionHistoryUseCase,
	plansUC getPlansUseCase,
	upgradeUC upgradeSubscriptionUseCase,
	cancelUC cancelSubscriptionUseCase,
	reactivateUC reactivateSubscriptionUseCase,
	limitsUC checkLimitsUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		currentUseCase:    currentUC,
		historyUseCase:    historyUC,
		plansUseCase:      plansUC,
		upgradeUseCase:    upgradeUC,
		cancelUseCase:     cancelUC,
		reactivateUseCase: reactivateUC,
		limitsUseCase:     limitsUC,
		logger:            logger,
	}
}

type UpgradeSubscriptionRequest struct {
	PlanID        string `json:"planId" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentID     string `json:"paymentId"`
	BillingCycle  string `json:"billingCycle"`
}

type CancelSubscriptionRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ReactivateSubscriptionRequest struct {
	PlanID        string `json:"planId"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentID     string `json:"paymentId"`
}

// GetCurrent handles GET /api/subscriptions/current
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	sub, err := h.currentUseCase.Execute(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sub)
}

// GetHistory handles GET /api/subscriptions/history
func (h *SubscriptionHandler) GetHistory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	subs, err := h.historyUseCase.Execute(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", subs)
}

// GetPlans handles GET /api/subscriptions/plans
func (h *SubscriptionHandler) GetPlans(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.plansUseCase.Execute())
}

// Upgrade handles POST /api/subscriptions/upgrade
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req UpgradeSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.FromBindError(err))
		return
	}

	result, err := h.upgradeUseCase.Execute(c.Request.Context(), usecases.UpgradeSubscriptionCommand{
		AccountID:     principal.AccountID,
		PlanID:        req.PlanID,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
		BillingCycle:  req.BillingCycle,
	})
	if err != nil {
		h.logger.Warnw("subscription upgrade failed", "error", err, "user_id", principal.AccountID, "plan_id", req.PlanID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// Cancel handles POST /api/subscriptions/cancel
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req CancelSubscriptionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, validation.FromBindError(err))
			return
		}
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		AccountID: principal.AccountID,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// Reactivate handles POST /api/subscriptions/reactivate
func (h *SubscriptionHandler) Reactivate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req ReactivateSubscriptionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, validation.FromBindError(err))
			return
		}
	}

	result, err := h.reactivateUseCase.Execute(c.Request.Context(), usecases.ReactivateSubscriptionCommand{
		AccountID:     principal.AccountID,
		PlanID:        req.PlanID,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// GetLimits handles GET /api/subscriptions/limits/:resourceType
func (h *SubscriptionHandler) GetLimits(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	limits, err := h.limitsUseCase.Execute(c.Request.Context(), principal.AccountID, c.Param("resourceType"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, limits.Message, limits)
}
