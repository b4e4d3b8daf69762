package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/roomplanner/genai/llm"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect Kind
	}{
		{name: "missing credential", err: fmt.Errorf("create model: %w", llm.ErrMissingCredential), expect: KindUnconfigured},
		{name: "status 429", err: &llm.APIError{StatusCode: 429}, expect: KindRateLimited},
		{name: "status 401", err: &llm.APIError{StatusCode: 401}, expect: KindUnauthorized},
		{name: "status 403", err: &llm.APIError{StatusCode: 403, Status: "PERMISSION_DENIED"}, expect: KindUnauthorized},
		{name: "resource exhausted text", err: errors.New("RESOURCE_EXHAUSTED: try later"), expect: KindRateLimited},
		{name: "rate limit text", err: errors.New("Rate limit reached"), expect: KindRateLimited},
		{name: "invalid key text", err: errors.New("API_KEY_INVALID"), expect: KindUnauthorized},
		{name: "unauthenticated text", err: errors.New("rpc error: code = Unauthenticated"), expect: KindUnauthorized},
		{name: "server error", err: &llm.APIError{StatusCode: 500, Message: "internal"}, expect: KindUnknown},
		{name: "cancelled", err: context.Canceled, expect: KindUnknown},
		{name: "already classified", err: notReady("x"), expect: KindNotReady},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.expect, classify(tc.err).Kind)
		})
	}
}

func TestError(t *testing.T) {
	cause := &llm.APIError{StatusCode: 429, Message: "slow down"}
	err := &Error{Kind: KindRateLimited, Err: cause}

	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.True(t, err.Retryable())
	assert.EqualValues(t, "rate limited: API error (status 429): slow down", err.Error())

	var apiErr *llm.APIError
	assert.True(t, errors.As(err, &apiErr))

	assert.EqualValues(t, "not ready: blank", notReady("blank").Error())
	assert.EqualValues(t, "unknown", (&Error{}).Error())
	assert.False(t, ErrUnauthorized.Retryable())
}
