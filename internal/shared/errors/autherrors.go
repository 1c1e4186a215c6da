package errors

import (
	"fmt"
	"net/http"
)

// Authentication and access error types
const (
	ErrorTypeCredentialsInvalid ErrorType = "credentials_invalid"
	ErrorTypeIncorrectLogin     ErrorType = "incorrect_login"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeAccessDenied       ErrorType = "access_denied"
	ErrorTypeAmbiguousGrant     ErrorType = "ambiguous_grant"
)

// AuthError represents authentication and access errors with security context
type AuthError struct {
	*AppError
	// ShouldLog marks errors worth an error-level log line
	ShouldLog bool
	// SecurityEvent marks errors tracked as security events
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

// NewCredentialsInvalidError is returned when no user could be resolved for a request.
func NewCredentialsInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeCredentialsInvalid,
			Message: "Could not validate credentials",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewIncorrectLoginError does not reveal whether the username or the password was wrong.
func NewIncorrectLoginError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeIncorrectLogin,
			Message: "Incorrect email or password",
			Code:    http.StatusBadRequest,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewTokenInvalidError creates an error for a token failing signature, expiry or structure checks
func NewTokenInvalidError(details ...string) *AuthError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Could not validate credentials",
			Code:    http.StatusUnauthorized,
			Details: detail,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewAccessDeniedError creates an error for a user lacking a grant for opCode
func NewAccessDeniedError(userID uint, opCode string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccessDenied,
			Message: fmt.Sprintf("User[%d] not authorized to access Transaction[%s]", userID, opCode),
			Code:    http.StatusForbidden,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewAmbiguousGrantError signals more than one distinct transaction resolved for a single code.
func NewAmbiguousGrantError(userID uint, opCode string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAmbiguousGrant,
			Message: fmt.Sprintf("Found more than one authorization for User[%d] and Transaction[%s]", userID, opCode),
			Code:    http.StatusForbidden,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// IsCredentialsInvalid checks if the error is a missing-user error
func IsCredentialsInvalid(err error) bool {
	return HasType(err, ErrorTypeCredentialsInvalid)
}

// IsIncorrectLogin checks if the error is a failed login
func IsIncorrectLogin(err error) bool {
	return HasType(err, ErrorTypeIncorrectLogin)
}

// IsTokenInvalid checks if the error is a token validation failure
func IsTokenInvalid(err error) bool {
	return HasType(err, ErrorTypeTokenInvalid)
}

// IsAccessDenied checks if the error is an access denial
func IsAccessDenied(err error) bool {
	return HasType(err, ErrorTypeAccessDenied)
}

// IsAmbiguousGrant checks if the error is an ambiguous grant anomaly
func IsAmbiguousGrant(err error) bool {
	return HasType(err, ErrorTypeAmbiguousGrant)
}
