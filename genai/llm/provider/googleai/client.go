package googleai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/llm/provider/base"
	"google.golang.org/genai"
)

// Client generates content through the official Google GenAI SDK.
type Client struct {
	base.Config
	APIKey string
	models contentGenerator
}

// contentGenerator is the subset of *genai.Models used by the client.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient creates a client bound to the Gemini API backend.
func NewClient(ctx context.Context, apiKey, model string, options ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, llm.ErrMissingCredential
	}
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
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     client.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: client.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	client.models = sdk.Models
	return client, nil
}

// Implements reports supported features.
func (c *Client) Implements(feature string) bool {
	switch feature {
	case base.IsMultimodal, base.CanGenerateImages, base.SupportsContinuationTokens:
		return true
	}
	return false
}

// Generate sends the conversation with Models.GenerateContent.
func (c *Client) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	model := request.Model
	if model == "" {
		model = c.Model
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	contents, err := toContents(request)
	if err != nil {
		return nil, err
	}
	if err = c.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.models.GenerateContent(ctx, model, contents, toConfig(request.Options))
	if err != nil {
		return nil, toError(err)
	}
	ret, err := toResponse(resp)
	if err != nil {
		return nil, err
	}
	if ret.Usage != nil && ret.Usage.TotalTokens > 0 {
		c.UsageListener.OnUsage(model, ret.Usage)
	}
	return ret, nil
}
