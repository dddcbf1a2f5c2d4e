package errors

import (
	"net/http"

	"elyukal/internal/errors"
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
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusForbidden,
		"AUTH_REQUIRED",
		"Not authenticated",
		"",
	)

	ErrInvalidSession = NewBaseError(
		http.StatusForbidden,
		"INVALID_SESSION",
		"Invalid session",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusForbidden,
		"SESSION_EXPIRED",
		"Session expired",
		"",
	)

	ErrAuthInfraFailure = NewBaseError(
		http.StatusInternalServerError,
		"AUTH_INFRA_FAILURE",
		"Authentication error",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	ErrAccountNotApproved = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_NOT_APPROVED",
		"Account has not been approved",
		"",
	)

	ErrNoStoreOwned = NewBaseError(
		http.StatusBadRequest,
		"NO_STORE_OWNED",
		"No store is linked to this account",
		"",
	)

	// Product lifecycle errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrTransitionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSITION_FAILED",
		"Product state transition failed",
		"",
	)

	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrStoreAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_OWNED",
		"Seller already owns a store",
		"",
	)

	// Upload-related errors
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"File upload failed",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"Uploaded file exceeds the size limit",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"Uploaded file type is not supported",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
