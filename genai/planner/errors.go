package planner

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/viant/roomplanner/genai/llm"
)

// Kind classifies planner failures.
type Kind int

const (
	// KindUnknown is the catch-all; the message is forwarded as-is.
	KindUnknown Kind = iota
	// KindUnconfigured means no API credential is available. Terminal.
	KindUnconfigured
	// KindRateLimited means the caller may retry after a delay.
	KindRateLimited
	// KindUnauthorized means the credential was rejected. Terminal.
	KindUnauthorized
	// KindNotReady means a precondition was not met; nothing was sent.
	KindNotReady
)

func (k Kind) String() string {
	switch k {
	case KindUnconfigured:
		return "unconfigured"
	case KindRateLimited:
		return "rate limited"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotReady:
		return "not ready"
	}
	return "unknown"
}

// Error is returned by every Manager operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Kind.String() + ": " + e.Message
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrRateLimited) works.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Retryable reports whether the caller may try again later.
func (e *Error) Retryable() bool {
	return e.Kind == KindRateLimited
}

var (
	ErrUnconfigured = &Error{Kind: KindUnconfigured}
	ErrRateLimited  = &Error{Kind: KindRateLimited}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrNotReady     = &Error{Kind: KindNotReady}
	ErrUnknown      = &Error{Kind: KindUnknown}
)

// UnconfiguredMessage is the static text callers surface for KindUnconfigured.
const UnconfiguredMessage = "The room planner is not configured: no API key is available."

func notReady(message string) *Error {
	return &Error{Kind: KindNotReady, Message: message}
}

var (
	rateLimitMarkers = []string{"429", "resource_exhausted", "rate limit", "ratelimit", "quota"}
	authMarkers      = []string{"api key not valid", "api_key_invalid", "401", "403", "permission_denied", "unauthenticated"}
)

// classify maps a transport error onto the taxonomy.
func classify(err error) *Error {
	var planErr *Error
	if errors.As(err, &planErr) {
		return planErr
	}
	if errors.Is(err, llm.ErrMissingCredential) {
		return &Error{Kind: KindUnconfigured, Message: UnconfiguredMessage, Err: err}
	}
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimited, Err: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Kind: KindUnauthorized, Err: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindUnknown, Err: err}
	}
	text := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(text, marker) {
			return &Error{Kind: KindRateLimited, Err: err}
		}
	}
	for _, marker := range authMarkers {
		if strings.Contains(text, marker) {
			return &Error{Kind: KindUnauthorized, Err: err}
		}
	}
	return &Error{Kind: KindUnknown, Err: err}
}
