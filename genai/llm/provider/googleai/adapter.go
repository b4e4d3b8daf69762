package googleai

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/viant/roomplanner/genai/llm"
	"google.golang.org/genai"
)

func toContents(request *llm.GenerateRequest) ([]*genai.Content, error) {
	ret := make([]*genai.Content, 0, len(request.Turns))
	for i, turn := range request.Turns {
		content := &genai.Content{Parts: make([]*genai.Part, 0, len(turn.Segments))}
		switch turn.Role {
		case llm.RoleRequester:
			content.Role = string(genai.RoleUser)
		case llm.RoleResponder:
			content.Role = string(genai.RoleModel)
		default:
			return nil, fmt.Errorf("turn %d: unsupported role: %q", i, turn.Role)
		}
		for _, segment := range turn.Segments {
			switch actual := segment.(type) {
			case llm.TextSegment:
				content.Parts = append(content.Parts, &genai.Part{Text: actual.Text})
			case llm.ImageSegment:
				content.Parts = append(content.Parts, &genai.Part{InlineData: &genai.Blob{Data: actual.Data, MIMEType: actual.MimeType}})
			case llm.ContinuationToken:
				signature, err := base64.StdEncoding.DecodeString(actual.Value)
				if err != nil {
					return nil, fmt.Errorf("turn %d: invalid continuation token: %w", i, err)
				}
				content.Parts = append(content.Parts, &genai.Part{ThoughtSignature: signature})
			default:
				return nil, fmt.Errorf("turn %d: unsupported segment %T", i, segment)
			}
		}
		ret = append(ret, content)
	}
	return ret, nil
}

func toConfig(options *llm.Options) *genai.GenerateContentConfig {
	ret := &genai.GenerateContentConfig{ResponseModalities: options.Modalities()}
	if options == nil {
		return ret
	}
	if options.Temperature > 0 {
		temperature := float32(options.Temperature)
		ret.Temperature = &temperature
	}
	if options.MediaResolution != "" {
		ret.MediaResolution = genai.MediaResolution(options.MediaResolution)
	}
	if options.AspectRatio != "" || options.ImageSize != "" {
		ret.ImageConfig = &genai.ImageConfig{AspectRatio: options.AspectRatio, ImageSize: options.ImageSize}
	}
	return ret
}

// toResponse maps SDK candidates; thought signatures are base64 encoded into
// opaque continuation token values.
func toResponse(resp *genai.GenerateContentResponse) (*llm.GenerateResponse, error) {
	if resp == nil {
		return nil, fmt.Errorf("genai returned empty response")
	}
	ret := &llm.GenerateResponse{Candidates: make([]llm.Turn, 0, len(resp.Candidates)), Model: resp.ModelVersion}
	for _, candidate := range resp.Candidates {
		turn := llm.Turn{Role: llm.RoleResponder}
		if candidate == nil || candidate.Content == nil {
			ret.Candidates = append(ret.Candidates, turn)
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			switch {
			case part.InlineData != nil:
				turn.Segments = append(turn.Segments, llm.ImageSegment{Data: part.InlineData.Data, MimeType: part.InlineData.MIMEType})
			case part.Text != "" && !part.Thought:
				turn.Segments = append(turn.Segments, llm.TextSegment{Text: part.Text})
			}
			if len(part.ThoughtSignature) > 0 {
				turn.Segments = append(turn.Segments, llm.ContinuationToken{Value: base64.StdEncoding.EncodeToString(part.ThoughtSignature)})
			}
		}
		ret.Candidates = append(ret.Candidates, turn)
	}
	if usage := resp.UsageMetadata; usage != nil {
		ret.Usage = &llm.Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return ret, nil
}

func toError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.APIError{StatusCode: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &llm.APIError{StatusCode: apiErrPtr.Code, Status: apiErrPtr.Status, Message: apiErrPtr.Message}
	}
	return err
}
