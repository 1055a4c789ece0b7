package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrMissingDateRange = &AppError{Code: http.StatusBadRequest, Message: "startDate and endDate are required"}
	ErrInvalidDate      = &AppError{Code: http.StatusBadRequest, Message: "Invalid date format"}
	ErrInvertedRange    = &AppError{Code: http.StatusBadRequest, Message: "startDate must not be after endDate"}
	ErrInternalServer   = &AppError{Code: http.StatusInternalServerError, Message: "Server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible. Anything that is not
// already an AppError maps to the generic server error so internal causes
// never reach a response body.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer
}
