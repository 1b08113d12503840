package connector

import (
	"errors"
	"fmt"
)

// ErrorCode classifies connector errors.
type ErrorCode int

const (
	// ErrCodeConfig indicates invalid connector or auth configuration.
	ErrCodeConfig ErrorCode = iota
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeClient indicates another client-side failure (4xx).
	ErrCodeClient
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfig:
		return "config"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeClient:
		return "client"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// ConfigError signals scheme misuse or invalid configuration. It is
// raised synchronously, before any network activity, and always marks a
// bug to fix rather than a condition to retry.
type ConfigError struct {
	Message string
}

// NewConfigError creates a configuration error.
func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "connector: " + e.Message
}

// ResponseError is returned when the remote API answers with a
// non-success status code and raise-for-status is enabled.
type ResponseError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Code classifies the failure.
	Code ErrorCode
	// Message describes the failure.
	Message string
	// Headers is a snapshot of the response headers.
	Headers map[string]string
	// Payload is the best-effort parsed response body.
	Payload Body
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("connector: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
}

// ToMap returns a serializable view of the error.
func (e *ResponseError) ToMap() map[string]any {
	headers := make(map[string]string, len(e.Headers))
	for k, v := range e.Headers {
		headers[k] = v
	}
	return map[string]any{
		"status_code": e.StatusCode,
		"message":     e.Message,
		"headers":     headers,
		"payload":     e.Payload.Value(),
	}
}

// Classify converts a failing HTTP status into a typed error.
// Only 4xx and 5xx are failures; informational, success, and redirect
// statuses return nil.
func Classify(statusCode int, headers map[string]string, payload Body) *ResponseError {
	if statusCode < 400 {
		return nil
	}

	var code ErrorCode
	switch {
	case statusCode == 401 || statusCode == 403:
		code = ErrCodeAuth
	case statusCode == 404:
		code = ErrCodeNotFound
	case statusCode == 429:
		code = ErrCodeRateLimit
	case statusCode < 500:
		code = ErrCodeClient
	default:
		code = ErrCodeServer
	}

	return &ResponseError{
		StatusCode: statusCode,
		Code:       code,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Headers:    headers,
		Payload:    payload,
	}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsResponseError checks if an error is a response error.
func IsResponseError(err error) bool {
	var e *ResponseError
	return errors.As(err, &e)
}

// IsAuth checks if an error is an authentication failure (401/403).
func IsAuth(err error) bool {
	var e *ResponseError
	return errors.As(err, &e) && e.Code == ErrCodeAuth
}

// IsNotFound checks if an error is a not-found response (404).
func IsNotFound(err error) bool {
	var e *ResponseError
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

// IsRateLimit checks if an error is a rate-limit response (429).
func IsRateLimit(err error) bool {
	var e *ResponseError
	return errors.As(err, &e) && e.Code == ErrCodeRateLimit
}

// IsServerError checks if an error is a server-side failure (5xx).
func IsServerError(err error) bool {
	var e *ResponseError
	return errors.As(err, &e) && e.Code == ErrCodeServer
}
