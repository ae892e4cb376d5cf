package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

// PermissionChecker answers casbin style subject/object/action queries.
type PermissionChecker interface {
	Enforce(subject, object, action string) (bool, error)
}

type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission must run after RequireAuth. The subject is the caller's
// email.
func (m *PermissionMiddleware) RequirePermission(object, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			return
		}

		allowed, err := m.checker.Enforce(strings.ToLower(principal.Email), object, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", principal.AccountID, "object", object, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", principal.AccountID, "object", object, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
