package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUpstream    = errors.New("upstream failure")
	ErrRateLimited = errors.New("rate limited")
	ErrUnexpected  = errors.New("unexpected error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// UpstreamError reports a non-success response or a malformed payload
// from one of the remote services. Message is safe to show to the user.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", e.Service, msg)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstream, e.Err}
	}
	return []error{ErrUpstream}
}

// NewUpstreamError creates an UpstreamError without a status code.
func NewUpstreamError(service, message string, cause error) *UpstreamError {
	return &UpstreamError{Service: service, Message: message, Err: cause}
}

// UserMessage returns the text shown to the user for a failed lookup.
// Upstream and validation errors carry their own message; anything else
// collapses into a generic one so internals never leak into the UI.
func UserMessage(err error) string {
	var upErr *UpstreamError
	if errors.As(err, &upErr) && upErr.Message != "" {
		return upErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) && len(valErr.Errors) > 0 {
		return valErr.Errors[0].Message
	}
	if errors.Is(err, ErrRateLimited) {
		return "Too many requests, please try again later."
	}
	return "Unexpected error: lookup failed"
}
