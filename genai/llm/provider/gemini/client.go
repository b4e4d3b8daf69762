package gemini

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/viant/roomplanner/genai/llm/provider/base"
)

// Client represents a Gemini API client
type Client struct {
	base.Config
	APIKey  string
	Version string
}

// NewClient creates a new Gemini client with the given API key and model name,
// e.g. "gemini-3-pro-image-preview".
func NewClient(apiKey, model string, options ...ClientOption) *Client {
	client := &Client{
		Config: base.Config{
			HTTPClient: &http.Client{Timeout: 5 * time.Minute},
			Model:      model,
		},
		APIKey: apiKey,
	}

	for _, option := range options {
		option(client)
	}

	if client.APIKey == "" {
		client.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if client.Version == "" {
		client.Version = "v1beta"
	}
	if client.BaseURL == "" {
		client.BaseURL = fmt.Sprintf(geminiEndpoint, client.Version)
	}
	return client
}

// Implements reports supported features.
func (c *Client) Implements(feature string) bool {
	switch feature {
	case base.IsMultimodal, base.CanGenerateImages, base.SupportsContinuationTokens:
		return true
	}
	return false
}
