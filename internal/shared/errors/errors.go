// Package errors provides application-level error types and utilities.
// Every error that reaches the HTTP boundary is an AppError carrying its
// status code; anything else is reported as a generic server error.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeUnauthorized        ErrorType = "unauthorized"
	ErrorTypeForbidden           ErrorType = "forbidden"
	ErrorTypeInternal            ErrorType = "internal_error"
	ErrorTypeBadRequest          ErrorType = "bad_request"
	ErrorTypeResourceUnavailable ErrorType = "resource_unavailable"
	ErrorTypeQuotaExceeded       ErrorType = "quota_exceeded"
	ErrorTypeInvalidOperation    ErrorType = "invalid_operation"
	ErrorTypeTenantNotFound      ErrorType = "SUBDOMAIN_NOT_FOUND"
)

// AppError represents an application error with additional context.
// Meta carries structured values the client needs (quota numbers, field
// errors) and is omitted when empty.
type AppError struct {
	Type    ErrorType      `json:"type"`
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Details string         `json:"details,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// WithMeta returns the error with the given structured context attached.
func (e *AppError) WithMeta(meta map[string]any) *AppError {
	e.Meta = meta
	return e
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewResourceUnavailableError is returned for both missing and foreign
// resources. The message never varies with the cause.
func NewResourceUnavailableError() *AppError {
	return newAppError(ErrorTypeResourceUnavailable, http.StatusNotFound, "Resource not found", nil)
}

// NewQuotaExceededError reports a denied creation together with the numbers
// the client needs to render an upgrade prompt.
func NewQuotaExceededError(resourceType string, limit, current int64) *AppError {
	remaining := limit - current
	if remaining < 0 {
		remaining = 0
	}
	return newAppError(ErrorTypeQuotaExceeded, http.StatusForbidden,
		fmt.Sprintf("Subscription limit reached. You can have maximum %d %s items.", limit, resourceType), nil).
		WithMeta(map[string]any{
			"limit":     limit,
			"current":   current,
			"remaining": remaining,
		})
}

// NewInvalidOperationError creates an invalid operation error. code is the
// HTTP status for the specific cause (400 or 404).
func NewInvalidOperationError(code int, message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidOperation, code, message, details)
}

// NewTenantNotFoundError is returned when a tenant host does not resolve.
func NewTenantNotFoundError() *AppError {
	return newAppError(ErrorTypeTenantNotFound, http.StatusNotFound, "Portfolio not found", nil)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL and SQLite
	return strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "UNIQUE constraint failed")
}
