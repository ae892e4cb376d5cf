package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/account/usecases"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
	"github.com/folio-hq/folio/internal/shared/validation"
)

// AuthHandler serves registration, login, the caller's own profile and the
// public subdomain lookups.
type AuthHandler struct {
	registerUseCase         registerUseCase
	loginUseCase            loginUseCase
	getProfileUseCase       getProfileUseCase
	updateProfileUseCase    updateProfileUseCase
	changePasswordUseCase   changePasswordUseCase
	checkSubdomainUseCase   checkSubdomainUseCase
	getPublicProfileUseCase getPublicProfileUseCase
	logger                  logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	getProfileUC getProfileUseCase,
	updateProfileUC updateProfileUseCase,
	changePasswordUC changePasswordUseCase,
	checkSubdomainUC checkSubdomainUseCase,
	getPublicProfileUC getPublicProfileUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:         registerUC,
		loginUseCase:            loginUC,
		getProfileUseCase:       getProfileUC,
		updateProfileUseCase:    updateProfileUC,
		changePasswordUseCase:   changePasswordUC,
		checkSubdomainUseCase:   checkSubdomainUC,
		getPublicProfileUseCase: getPublicProfileUC,
		logger:                  logger,
	}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30,alphanum"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FullName  string `json:"fullName" binding:"required,max=100"`
	Subdomain string `json:"subdomain" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName       *string `json:"fullName" binding:"omitempty,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	ProfilePicture *string `json:"profilePicture"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponseWithError(c, validation.FromBindError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Subdomain: req.Subdomain,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.FromBindError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.IsSecurityEvent(err) {
			h.logger.Warnw("login rejected", "client_ip", c.ClientIP(), "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	user, err := h.getProfileUseCase.Execute(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": user})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.FromBindError(err))
		return
	}

	user, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		AccountID:      principal.AccountID,
		FullName:       req.FullName,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

// ChangePassword handles PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.FromBindError(err))
		return
	}

	err := h.changePasswordUseCase.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		AccountID:       principal.AccountID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// CheckSubdomain handles GET /api/auth/check-subdomain/:subdomain
func (h *AuthHandler) CheckSubdomain(c *gin.Context) {
	result, err := h.checkSubdomainUseCase.Execute(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.Invalid {
		status = http.StatusBadRequest
	}
	c.JSON(status, utils.APIResponse{
		Success: result.Available,
		Data:    result,
		Message: result.Message,
	})
}

// GetPublicUser handles GET /api/auth/user/:subdomain
func (h *AuthHandler) GetPublicUser(c *gin.Context) {
	user, err := h.getPublicProfileUseCase.Execute(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": user})
}
