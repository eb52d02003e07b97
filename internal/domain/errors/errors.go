package errors

import (
	"net/http"

	"vitrina/internal/errors"
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
	// Authentication gate errors. All map to 401; the business code tells
	// the caller which way the credential failed.
	ErrTokenNotProvided = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_NOT_PROVIDED",
		"no bearer token was provided",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"the token validity window has elapsed",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"the token signature or structure does not verify",
		"",
	)

	ErrAuthentication = NewBaseError(
		http.StatusUnauthorized,
		"ERROR_AUTHENTICATION",
		"authentication failed",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_IN_USE",
		"the email address is already in use",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"the requested role cannot be assigned",
		"",
	)

	// Business-related errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"business not found",
		"",
	)

	// ErrBusinessRefNotFound reports a dangling businessRef on a listing
	// create or update. Unlike the read-path variant it is a 400: the
	// request body, not the URL, names the missing record.
	ErrBusinessRefNotFound = NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_NOT_FOUND",
		"the referenced business does not exist",
		"",
	)

	ErrOwnerRefNotFound = NewBaseError(
		http.StatusBadRequest,
		"OWNER_NOT_FOUND",
		"the referenced owner account does not exist or is not a merchant",
		"",
	)

	ErrBusinessAlreadyListed = NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_ALREADY_LISTED",
		"the business is already referenced by another listing",
		"",
	)

	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"listing not found",
		"",
	)

	ErrAlreadyArchived = NewBaseError(
		http.StatusNotFound,
		"ALREADY_ARCHIVED",
		"listing not found or already archived",
		"",
	)

	ErrInvalidScore = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SCORE",
		"score must be between 0 and 5",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// NewForbiddenFieldError builds the field-guard rejection for a single
// offending field. The whole update is rejected atomically, so the first
// violation found names the failure.
func NewForbiddenFieldError(field string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"FORBIDDEN_FIELD",
		"the caller role may not modify the field '"+field+"'",
		field,
	)
}

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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
