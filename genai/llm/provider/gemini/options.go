package gemini

import (
	"net/http"
	"time"

	"github.com/viant/roomplanner/genai/llm/provider/base"
)

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { base.WithBaseURL(baseURL)(&c.Config) }
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { base.WithHTTPClient(httpClient)(&c.Config) }
}

func WithModel(model string) ClientOption {
	return func(c *Client) { base.WithModel(model)(&c.Config) }
}

func WithVersion(version string) ClientOption {
	return func(c *Client) { c.Version = version }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { base.WithTimeout(timeout)(&c.Config) }
}

// WithRequestsPerMinute throttles outbound calls.
func WithRequestsPerMinute(n int) ClientOption {
	return func(c *Client) { base.WithRequestsPerMinute(n)(&c.Config) }
}

// WithUsageListener registers a callback to receive token usage information.
func WithUsageListener(l base.UsageListener) ClientOption {
	return func(c *Client) { c.UsageListener = l }
}
