// Package errors provides the error taxonomy shared by every saasconnector client.
//
// Errors fall into four groups:
// - Validation errors, raised before any network call
// - Transport errors, when the HTTP call itself could not complete
// - Vendor errors, when a vendor reports a business failure (auth, rate limit, not found)
// - Configuration errors
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error categories for saasconnector operations
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTransport       = errors.New("transport error")
	ErrVendor          = errors.New("vendor error")
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConfiguration   = errors.New("configuration error")
)

// ValidationError represents a missing or empty required argument.
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsValidation checks if an error is an invalid-argument error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// TransportError represents an HTTP call that could not complete.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// NewTransportError creates a new transport error
func NewTransportError(method, url string, err error) *TransportError {
	return &TransportError{
		Method: method,
		URL:    url,
		Err:    err,
	}
}

// IsTransport checks if an error is a transport-level failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// VendorError represents a business failure reported by a vendor API.
type VendorError struct {
	Vendor      string
	StatusCode  int
	Code        string
	Message     string
	Body        []byte
	RateLimited bool
	RetryAfter  time.Duration
}

func (e *VendorError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Body)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s API error (HTTP %d, %s): %s", e.Vendor, e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("%s API error (HTTP %d): %s", e.Vendor, e.StatusCode, msg)
}

func (e *VendorError) Is(target error) bool {
	switch target {
	case ErrVendor:
		return true
	case ErrRateLimited:
		return e.RateLimited
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	default:
		return false
	}
}

// NewVendorError creates a new vendor error from a response status and body
func NewVendorError(vendor string, statusCode int, code, message string, body []byte) *VendorError {
	return &VendorError{
		Vendor:     vendor,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Body:       body,
	}
}

// IsVendor checks if an error was reported by a vendor
func IsVendor(err error) bool {
	return errors.Is(err, ErrVendor)
}

// IsRateLimited checks if a vendor rejected the call because of a request limit
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error represents an authorization failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
