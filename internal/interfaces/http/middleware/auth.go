package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/tenancy/usecases"
	"github.com/folio-hq/folio/internal/shared/constants"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

type AuthMiddleware struct {
	authenticate *usecases.AuthenticateUseCase
	logger       logger.Interface
}

func NewAuthMiddleware(authenticate *usecases.AuthenticateUseCase, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticate: authenticate,
		logger:       logger,
	}
}

// RequireAuth attaches the caller's principal or answers 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.authenticate.Execute(c.Request.Context(), c.GetHeader(constants.HeaderAuthorization))
		if err != nil {
			if errors.IsSecurityEvent(err) {
				m.logger.Warnw("rejected credential",
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"error", err,
				)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, principal.AccountID)
		c.Set(constants.ContextKeyPrincipal, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by RequireAuth.
func GetPrincipal(c *gin.Context) (*usecases.Principal, bool) {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*usecases.Principal)
	return p, ok && p != nil
}

// MustPrincipal returns the principal or answers 401 and reports false.
func MustPrincipal(c *gin.Context) (*usecases.Principal, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewCredentialMissingError())
		c.Abort()
		return nil, false
	}
	return p, true
}
