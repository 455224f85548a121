package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying the HTTP status and the message
// shown to the user. The wrapped error stays out of responses and goes to
// the logs only.
type AppError struct {
	Code    int    `json:"status_code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	Context string `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of the error.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage returns the message safe to show to the user.
func (e *AppError) UserMessage() string {
	return e.Message
}

// GetContext returns the extra context attached to the error.
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext attaches extra context (function, parameters) for the logs.
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewValidationError creates a 400 Bad Request error.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a 404 Not Found error.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewPayloadTooLargeError creates a 413 Request Entity Too Large error.
func NewPayloadTooLargeError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: message,
		Err:     err,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests error.
func NewTooManyRequestsError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a 500 Internal Server Error. The user sees a
// generic message; the details go to the logs.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "내부 서버 오류가 발생했습니다",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewServiceUnavailableError creates a 503 Service Unavailable error.
func NewServiceUnavailableError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: message,
		Err:     err,
	}
}

// WrapError attaches a message to an existing error. An AppError keeps its
// status; anything else becomes an internal error.
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
