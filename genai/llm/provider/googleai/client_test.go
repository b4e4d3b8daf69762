package googleai

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/roomplanner/genai/llm"
	"github.com/viant/roomplanner/genai/llm/provider/base"
	"google.golang.org/genai"
)

type fakeModels struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	response *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.response, f.err
}

func TestClient_Generate(t *testing.T) {
	signature := []byte("opaque-signature")
	token := base64.StdEncoding.EncodeToString(signature)
	fake := &fakeModels{response: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: []*genai.Part{
			{Text: "Rooms: Kitchen", ThoughtSignature: signature},
			{InlineData: &genai.Blob{Data: []byte{1, 2}, MIMEType: "image/png"}},
		}}}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 1, CandidatesTokenCount: 2, TotalTokenCount: 3},
	}}
	var usage *llm.Usage
	client := &Client{Config: base.Config{Model: "gemini-3-pro-image-preview"}, models: fake}
	client.UsageListener = func(model string, u *llm.Usage) { usage = u }

	resp, err := client.Generate(context.Background(), &llm.GenerateRequest{
		Turns: []llm.Turn{
			llm.NewTurn(llm.RoleRequester, llm.TextSegment{Text: "analyze"}, llm.ImageSegment{Data: []byte{9}, MimeType: "image/jpeg"}),
			llm.NewTurn(llm.RoleResponder, llm.TextSegment{Text: "ok"}, llm.ContinuationToken{Value: token}),
		},
		Options: &llm.Options{ImageSize: "2K", MediaResolution: llm.MediaResolutionHigh, Temperature: 0.5},
	})
	require.NoError(t, err)

	assert.EqualValues(t, "gemini-3-pro-image-preview", fake.model)
	require.Len(t, fake.contents, 2)
	assert.EqualValues(t, "user", fake.contents[0].Role)
	assert.EqualValues(t, "image/jpeg", fake.contents[0].Parts[1].InlineData.MIMEType)
	assert.EqualValues(t, "model", fake.contents[1].Role)
	assert.EqualValues(t, signature, fake.contents[1].Parts[1].ThoughtSignature)
	assert.EqualValues(t, []string{llm.ModalityText, llm.ModalityImage}, fake.config.ResponseModalities)
	assert.EqualValues(t, genai.MediaResolutionHigh, fake.config.MediaResolution)
	assert.EqualValues(t, "2K", fake.config.ImageConfig.ImageSize)

	turn, ok := resp.First()
	require.True(t, ok)
	assert.EqualValues(t, []llm.Segment{
		llm.TextSegment{Text: "Rooms: Kitchen"},
		llm.ContinuationToken{Value: token},
		llm.ImageSegment{Data: []byte{1, 2}, MimeType: "image/png"},
	}, turn.Segments)
	assert.EqualValues(t, &llm.Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3}, usage)
}

func TestClient_GenerateError(t *testing.T) {
	fake := &fakeModels{err: genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}}
	client := &Client{Config: base.Config{Model: "m"}, models: fake}
	_, err := client.Generate(context.Background(), &llm.GenerateRequest{
		Turns: []llm.Turn{llm.NewTurn(llm.RoleRequester, llm.TextSegment{Text: "x"})},
	})
	var apiErr *llm.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.EqualValues(t, 429, apiErr.StatusCode)
	assert.EqualValues(t, "RESOURCE_EXHAUSTED", apiErr.Status)
}

func TestToContents_InvalidToken(t *testing.T) {
	_, err := toContents(&llm.GenerateRequest{Turns: []llm.Turn{
		llm.NewTurn(llm.RoleRequester, llm.ContinuationToken{Value: "not base64!"}),
	}})
	assert.Error(t, err)
}

func TestNewClient_MissingCredential(t *testing.T) {
	_, err := NewClient(context.Background(), "", "m")
	assert.True(t, errors.Is(err, llm.ErrMissingCredential))
}
