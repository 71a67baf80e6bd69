package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("text", "required")

	if got := err.Error(); got != "validation: text: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestUpstreamError_IsUpstreamAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := fmt.Errorf("explain: %w", &UpstreamError{Service: "openai", StatusCode: 502, Message: "bad gateway", Err: cause})

	if !errors.Is(err, ErrUpstream) {
		t.Fatal("errors.Is(err, ErrUpstream) = false")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false")
	}
	if got := err.Error(); got != "explain: openai: status 502: bad gateway" {
		t.Errorf("unexpected Error(): %q", got)
	}
}

func TestUpstreamError_FallsBackToCauseText(t *testing.T) {
	t.Parallel()

	err := NewUpstreamError("dictionary", "", errors.New("eof"))
	if got := err.Error(); got != "dictionary: eof" {
		t.Errorf("unexpected Error(): %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "upstream", err: NewUpstreamError("openai", "quota exceeded", nil), want: "quota exceeded"},
		{name: "wrapped upstream", err: fmt.Errorf("x: %w", NewUpstreamError("relay", "no explanation received", nil)), want: "no explanation received"},
		{name: "validation", err: NewValidationError("text", "selection is empty"), want: "selection is empty"},
		{name: "rate limited", err: fmt.Errorf("relay: %w", ErrRateLimited), want: "Too many requests, please try again later."},
		{name: "unexpected", err: errors.New("nil pointer"), want: "Unexpected error: lookup failed"},
		{name: "upstream without message", err: NewUpstreamError("openai", "", errors.New("tls")), want: "Unexpected error: lookup failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrValidation, ErrUpstream, ErrRateLimited, ErrUnexpected}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
