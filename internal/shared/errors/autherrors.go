package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeCredentialMissing  ErrorType = "credential_missing"
	ErrorTypeCredentialInvalid  ErrorType = "credential_invalid"
	ErrorTypeCredentialExpired  ErrorType = "credential_expired"
	ErrorTypeAccountNotFound    ErrorType = "account_not_found"
	ErrorTypeAccountDeactivated ErrorType = "account_deactivated"
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
)

// AuthError represents authentication failures. All of them map to 401.
type AuthError struct {
	*AppError
	// SecurityEvent marks failures worth a warning in the logs (tampered or
	// foreign tokens) as opposed to routine expiry.
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(t ErrorType, message string, security bool) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    t,
			Message: message,
			Code:    http.StatusUnauthorized,
		},
		SecurityEvent: security,
	}
}

// NewCredentialMissingError is returned when no bearer token is present.
func NewCredentialMissingError() *AuthError {
	return newAuthError(ErrorTypeCredentialMissing, "No token provided", false)
}

// NewCredentialInvalidError is returned when signature or format checks fail.
func NewCredentialInvalidError() *AuthError {
	return newAuthError(ErrorTypeCredentialInvalid, "Invalid token", true)
}

// NewCredentialExpiredError is returned when the token expiry has passed.
func NewCredentialExpiredError() *AuthError {
	return newAuthError(ErrorTypeCredentialExpired, "Token expired", false)
}

// NewAccountNotFoundError is returned when the token subject no longer exists.
func NewAccountNotFoundError() *AuthError {
	return newAuthError(ErrorTypeAccountNotFound, "User not found", true)
}

// NewAccountDeactivatedError is returned for deactivated accounts.
func NewAccountDeactivatedError() *AuthError {
	return newAuthError(ErrorTypeAccountDeactivated, "Account has been deactivated", false)
}

// NewInvalidCredentialsError is returned by login for a wrong email or
// password without revealing which one was wrong.
func NewInvalidCredentialsError() *AuthError {
	return newAuthError(ErrorTypeInvalidCredentials, "Invalid credentials", true)
}

// GetAuthError extracts AuthError from error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
