package tenancy

import "errors"

var (
	ErrInvalidSubdomain  = errors.New("subdomain can only contain letters, numbers, and hyphens")
	ErrReservedSubdomain = errors.New("this subdomain is reserved")
	ErrTenantNotFound    = errors.New("tenant not found")
)
