package googleai

import (
	"net/http"
	"time"

	"github.com/viant/roomplanner/genai/llm/provider/base"
)

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { base.WithHTTPClient(httpClient)(&c.Config) }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { base.WithTimeout(timeout)(&c.Config) }
}

func WithRequestsPerMinute(n int) ClientOption {
	return func(c *Client) { base.WithRequestsPerMinute(n)(&c.Config) }
}

func WithUsageListener(l base.UsageListener) ClientOption {
	return func(c *Client) { c.UsageListener = l }
}
