package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/entitlement/usecases"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

// QuotaMiddleware rejects creation of plan-limited kinds once the caller's
// plan limit is reached.
type QuotaMiddleware struct {
	checkQuota *usecases.CheckQuotaUseCase
	logger     logger.Interface
}

func NewQuotaMiddleware(checkQuota *usecases.CheckQuotaUseCase, logger logger.Interface) *QuotaMiddleware {
	return &QuotaMiddleware{
		checkQuota: checkQuota,
		logger:     logger,
	}
}

// CheckLimit must run after RequireAuth.
func (m *QuotaMiddleware) CheckLimit(kind resource.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			return
		}

		_, err := m.checkQuota.Execute(c.Request.Context(), usecases.CheckQuotaCommand{
			AccountID: principal.AccountID,
			Tier:      principal.Tier,
			Kind:      kind,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
