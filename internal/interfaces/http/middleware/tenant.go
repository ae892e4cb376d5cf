package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/tenancy/usecases"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	"github.com/folio-hq/folio/internal/shared/constants"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

// TenantMiddleware classifies the Host header and resolves tenant hosts to
// their account.
type TenantMiddleware struct {
	resolve *usecases.ResolveTenantUseCase
	logger  logger.Interface
}

func NewTenantMiddleware(resolve *usecases.ResolveTenantUseCase, logger logger.Interface) *TenantMiddleware {
	return &TenantMiddleware{
		resolve: resolve,
		logger:  logger,
	}
}

// Classify stores the request class for every request. It never rejects.
func (m *TenantMiddleware) Classify() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyRequestClass, tenancy.Classify(c.Request.Host))
		c.Next()
	}
}

// ResolveTenant loads the account behind a tenant host. Non-tenant hosts
// pass through untouched; unknown or inactive tenants get 404.
func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		class := GetRequestClass(c)
		if !class.IsTenant() {
			c.Next()
			return
		}

		tenant, err := m.resolve.Execute(c.Request.Context(), class.Subdomain)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTenant, tenant)
		c.Next()
	}
}

// GetRequestClass returns the stored class, classifying on demand when
// Classify did not run.
func GetRequestClass(c *gin.Context) tenancy.RequestClass {
	class := tenancy.Unclassified
	if v, ok := c.Get(constants.ContextKeyRequestClass); ok {
		if stored, ok := v.(tenancy.RequestClass); ok {
			class = stored
		}
	}
	if !class.IsClassified() {
		class = tenancy.Classify(c.Request.Host)
	}
	return class
}

// GetTenant returns the account resolved by ResolveTenant.
func GetTenant(c *gin.Context) (*account.Account, bool) {
	v, ok := c.Get(constants.ContextKeyTenant)
	if !ok {
		return nil, false
	}
	a, ok := v.(*account.Account)
	return a, ok && a != nil
}

// RequireTenant answers 404 on hosts that do not address a tenant.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetTenant(c); !ok {
			utils.ErrorResponseWithError(c, errors.NewTenantNotFoundError())
			c.Abort()
			return
		}
		c.Next()
	}
}
