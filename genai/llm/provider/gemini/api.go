package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/roomplanner/genai/llm"
)

// Generate generates a response using the Gemini API
func (c *Client) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if c.APIKey == "" {
		return nil, llm.ErrMissingCredential
	}
	model := request.Model
	if model == "" {
		model = c.Model
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	req, err := ToRequest(request)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	if err = c.Wait(ctx); err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/%s:generateContent?key=%s", strings.TrimRight(c.BaseURL, "/"), model, url.QueryEscape(c.APIKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, toAPIError(resp.StatusCode, respBytes)
	}

	var apiResp Response
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(apiResp.Candidates) == 0 && apiResp.PromptFeedback != nil && apiResp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("gemini blocked prompt: %s", apiResp.PromptFeedback.BlockReason)
	}
	ret, err := ToLLMResponse(&apiResp)
	if err != nil {
		return nil, err
	}
	if c.UsageListener != nil && ret.Usage != nil && ret.Usage.TotalTokens > 0 {
		c.UsageListener.OnUsage(model, ret.Usage)
	}
	return ret, nil
}

func toAPIError(statusCode int, body []byte) *llm.APIError {
	ret := &llm.APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
	envelope := &ErrorResponse{}
	if err := json.Unmarshal(body, envelope); err == nil && envelope.Error.Message != "" {
		ret.Message = envelope.Error.Message
		ret.Status = envelope.Error.Status
	}
	return ret
}
