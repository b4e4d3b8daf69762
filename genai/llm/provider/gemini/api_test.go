package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/roomplanner/genai/llm"
)

// roundTripFunc allows using a function as an HTTP RoundTripper.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func newTestClient(t *testing.T, status int, body string, options ...ClientOption) (*Client, *http.Request) {
	var captured http.Request
	client := NewClient("apiKey", "gemini-3-pro-image-preview", options...)
	client.BaseURL = "http://localhost/v1beta/models"
	client.HTTPClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = *req
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body)), Header: make(http.Header)}, nil
	})}
	return client, &captured
}

func TestGenerate(t *testing.T) {
	body := `{"candidates":[{"content":{"role":"model","parts":[{"text":"hi","thoughtSignature":"sig"}]}}],"usageMetadata":{"promptTokenCount":5,"candidatesTokenCount":6,"totalTokenCount":11}}`
	var usageModel string
	client, captured := newTestClient(t, http.StatusOK, body, WithUsageListener(func(model string, usage *llm.Usage) {
		usageModel = model
	}))

	resp, err := client.Generate(context.Background(), &llm.GenerateRequest{
		Turns: []llm.Turn{llm.NewTurn(llm.RoleRequester, llm.TextSegment{Text: "hello"})},
	})
	require.NoError(t, err)
	turn, ok := resp.First()
	require.True(t, ok)
	assert.EqualValues(t, []llm.ContinuationToken{{Value: "sig"}}, turn.Tokens())
	assert.EqualValues(t, "gemini-3-pro-image-preview", usageModel)
	assert.EqualValues(t, "/v1beta/models/gemini-3-pro-image-preview:generateContent", captured.URL.Path)
	assert.EqualValues(t, "apiKey", captured.URL.Query().Get("key"))
	assert.EqualValues(t, http.MethodPost, captured.Method)
}

func TestGenerate_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		apiKey        string
		status        int
		body          string
		expectStatus  int
		expectMessage string
		expectMissing bool
	}{
		{
			name:          "rate limited",
			apiKey:        "k",
			status:        http.StatusTooManyRequests,
			body:          `{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`,
			expectStatus:  http.StatusTooManyRequests,
			expectMessage: "Resource has been exhausted",
		},
		{
			name:          "plain body",
			apiKey:        "k",
			status:        http.StatusBadGateway,
			body:          "upstream failure",
			expectStatus:  http.StatusBadGateway,
			expectMessage: "upstream failure",
		},
		{
			name:          "missing key",
			expectMissing: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "")
			client, _ := newTestClient(t, tc.status, tc.body)
			client.APIKey = tc.apiKey
			_, err := client.Generate(context.Background(), &llm.GenerateRequest{
				Turns: []llm.Turn{llm.NewTurn(llm.RoleRequester, llm.TextSegment{Text: "hello"})},
			})
			require.Error(t, err)
			if tc.expectMissing {
				assert.True(t, errors.Is(err, llm.ErrMissingCredential))
				return
			}
			var apiErr *llm.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.EqualValues(t, tc.expectStatus, apiErr.StatusCode)
			assert.EqualValues(t, tc.expectMessage, apiErr.Message)
		})
	}
}

func TestClient_Implements(t *testing.T) {
	client := NewClient("k", "m")
	assert.True(t, client.Implements("supports-continuation-tokens"))
	assert.False(t, client.Implements("can-use-tools"))
}
