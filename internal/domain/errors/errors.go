package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
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

// Is matches any BaseError carrying the same business code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Identity-related errors
	ErrSignInRequired = NewBaseError(
		http.StatusUnauthorized,
		"SIGN_IN_REQUIRED",
		"Sign in required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrStoreOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"STORE_OWNERSHIP_VIOLATION",
		"You do not own this store",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Location-related errors
	ErrLocationPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"LOCATION_PERMISSION_DENIED",
		"Permission to access location was denied",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"Current location is unavailable",
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
		"Document transaction failed",
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

// DocumentStoreError represents a document store failure, implementing the AppError interface
type DocumentStoreError struct {
	err     error
	details string
}

// NewDocumentStoreError creates a document store related error
func NewDocumentStoreError(err error, details string) AppError {
	return &DocumentStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DocumentStoreError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// Unwrap exposes the underlying store error
func (e *DocumentStoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DocumentStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DocumentStoreError) ErrorCode() string {
	return "DOCUMENT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DocumentStoreError) Message() string {
	return "Document store operation failed"
}

// Details returns detailed error information
func (e *DocumentStoreError) Details() string {
	return e.details
}

// MalformedDocumentError reports a document that failed validation at the collection boundary.
type MalformedDocumentError struct {
	Collection string
	DocumentID string
	Field      string
	Reason     string
}

// NewMalformedDocumentError creates a malformed document error for one field
func NewMalformedDocumentError(collection, documentID, field, reason string) *MalformedDocumentError {
	return &MalformedDocumentError{
		Collection: collection,
		DocumentID: documentID,
		Field:      field,
		Reason:     reason,
	}
}

// Error implements the error interface
func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed %s/%s: field %q %s", e.Collection, e.DocumentID, e.Field, e.Reason)
}

// HTTPCode returns the HTTP status code
func (e *MalformedDocumentError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *MalformedDocumentError) ErrorCode() string {
	return "MALFORMED_DOCUMENT"
}

// Message returns the user-friendly error message
func (e *MalformedDocumentError) Message() string {
	return "Stored document is malformed"
}

// Details returns detailed error information
func (e *MalformedDocumentError) Details() string {
	return e.Error()
}
