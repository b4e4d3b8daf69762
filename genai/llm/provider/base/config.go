package base

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config aggregates common client parameters used by all LLM providers.  It is
// embedded into every concrete provider.Client to remove the need for
// per-package boiler-plate.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Model      string
	Timeout    time.Duration

	// Limiter, when set, throttles outbound calls. Clients wait for a token
	// before sending; a cancelled context aborts the wait.
	Limiter *rate.Limiter

	// UsageListener, when set, receives token usage information for each
	// successful model invocation.
	UsageListener UsageListener
}

// Wait blocks until the limiter admits the next call.
func (c *Config) Wait(ctx context.Context) error {
	if c.Limiter == nil {
		return nil
	}
	return c.Limiter.Wait(ctx)
}

// ClientOption mutates Config; providers expose it via type alias so that users
// can continue to call e.g. *gemini.WithBaseURL(...)*.
type ClientOption func(*Config)

// WithBaseURL overrides the default endpoint of the provider.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Config) {
		if baseURL != "" {
			c.BaseURL = baseURL
		}
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Config) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

// WithModel selects the model name.
func WithModel(model string) ClientOption {
	return func(c *Config) {
		if model != "" {
			c.Model = model
		}
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
			if c.HTTPClient != nil {
				c.HTTPClient.Timeout = timeout
			}
		}
	}
}

// WithRequestsPerMinute installs a limiter admitting at most n calls per minute.
func WithRequestsPerMinute(n int) ClientOption {
	return func(c *Config) {
		if n > 0 {
			c.Limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
		}
	}
}

// WithUsageListener registers a callback to receive token usage metrics.
func WithUsageListener(l UsageListener) ClientOption {
	return func(c *Config) {
		c.UsageListener = l
	}
}
