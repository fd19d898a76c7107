// Package apperrors defines the error taxonomy shared by all HTTP handlers:
// a base application error carrying an HTTP status plus constructors for the
// common failure classes.
package apperrors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func New(message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

func Validation(message string, details map[string]interface{}) *AppError {
	return New(message, http.StatusUnprocessableEntity, details)
}

func Authentication(message string) *AppError {
	if message == "" {
		message = "authentication failed"
	}
	return New(message, http.StatusUnauthorized, nil)
}

func Authorization(message string) *AppError {
	if message == "" {
		message = "not authorized"
	}
	return New(message, http.StatusForbidden, nil)
}

func NotFound(message string) *AppError {
	if message == "" {
		message = "resource not found"
	}
	return New(message, http.StatusNotFound, nil)
}

func RateLimit(message string) *AppError {
	if message == "" {
		message = "rate limit exceeded"
	}
	return New(message, http.StatusTooManyRequests, nil)
}

func Processing(message string) *AppError {
	return New(message, http.StatusInternalServerError, nil)
}

// StatusCode extracts the HTTP status from err, defaulting to 500 for
// anything outside the taxonomy.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
