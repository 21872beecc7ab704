package models

import (
	"errors"
	"fmt"
)

// AppError is the uniform error shape every API and page operation
// returns. Transport faults are converted into it at the point of call and
// never propagate as uncaught failures to callers.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s with ID %v not found", resource, id),
		StatusCode: 404,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: 401,
	}
}

func NewNetworkError(err error) *AppError {
	return &AppError{
		Code:    "NETWORK_ERROR",
		Message: "Network error",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal error",
		Err:     err,
	}
}

// NewAPIError maps a non-2xx backend response to an AppError, keeping the
// backend's own message when it sent one.
func NewAPIError(statusCode int, body ErrorResponse) *AppError {
	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", statusCode)
	}
	return &AppError{
		Code:       "API_ERROR",
		Message:    msg,
		StatusCode: statusCode,
	}
}

// IsUnauthorized reports whether err represents a 401 response.
func IsUnauthorized(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == 401 || appErr.Code == "UNAUTHORIZED"
	}
	return false
}
