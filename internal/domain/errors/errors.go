// Package errors defines the application error taxonomy. Every error carries
// an HTTP status, a stable business code and a message safe to show external
// callers. Key material, ciphertext and stack traces never appear in messages.
package errors

import (
	"net/http"

	"vaultd/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Encryption engine errors. Decryption always fails closed: a failed tag
	// check or malformed record never yields partial plaintext.
	ErrMasterKeyInvalid = NewBaseError(
		http.StatusInternalServerError,
		"ENCRYPTION_KEY_INVALID",
		"Encryption key is missing or malformed",
		"",
	)

	ErrDecryptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"DECRYPTION_FAILED",
		"Stored credential failed integrity verification",
		"",
	)

	ErrSecretFormatInvalid = NewBaseError(
		http.StatusInternalServerError,
		"SECRET_FORMAT_INVALID",
		"Stored credential record is malformed",
		"",
	)

	// Credential store errors
	ErrConnectionNotFound = NewBaseError(
		http.StatusNotFound,
		"CONNECTION_NOT_FOUND",
		"No active connection found for this owner and service",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Unknown or inactive service",
		"",
	)

	ErrConnectionEmpty = NewBaseError(
		http.StatusBadRequest,
		"CONNECTION_EMPTY",
		"A connection requires at least one credential field",
		"",
	)

	// OAuth flow errors
	ErrOAuthConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"OAUTH_CONFIG_NOT_FOUND",
		"No OAuth application is configured for this service",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Unknown or already used OAuth state",
		"",
	)

	ErrOAuthStateExpired = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_EXPIRED",
		"OAuth state has expired, restart the authorization",
		"",
	)

	ErrOAuthServiceMismatch = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_SERVICE_MISMATCH",
		"Callback service does not match the authorization request",
		"",
	)

	ErrUpstreamFailed = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILED",
		"Third-party provider call failed or timed out",
		"",
	)

	// Gateway errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid internal credentials",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
