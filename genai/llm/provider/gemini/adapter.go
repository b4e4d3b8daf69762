package gemini

import (
	"encoding/base64"
	"fmt"

	"github.com/viant/roomplanner/genai/llm"
)

// ToRequest converts an llm.GenerateRequest to a Gemini Request
func ToRequest(request *llm.GenerateRequest) (*Request, error) {
	req := &Request{Contents: make([]Content, 0, len(request.Turns))}

	options := request.Options
	req.GenerationConfig = &GenerationConfig{
		ResponseModalities: options.Modalities(),
	}
	mediaResolution := ""
	if options != nil {
		if options.Temperature > 0 {
			req.GenerationConfig.Temperature = options.Temperature
		}
		if options.AspectRatio != "" || options.ImageSize != "" {
			req.GenerationConfig.ImageConfig = &ImageConfig{
				AspectRatio: options.AspectRatio,
				ImageSize:   options.ImageSize,
			}
		}
		mediaResolution = options.MediaResolution
	}

	for i, turn := range request.Turns {
		role, err := toRole(turn.Role)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		content := Content{Role: role, Parts: make([]Part, 0, len(turn.Segments))}
		for _, segment := range turn.Segments {
			switch actual := segment.(type) {
			case llm.TextSegment:
				content.Parts = append(content.Parts, Part{Text: actual.Text})
			case llm.ImageSegment:
				part := Part{InlineData: &InlineData{
					MimeType: actual.MimeType,
					Data:     base64.StdEncoding.EncodeToString(actual.Data),
				}}
				if mediaResolution != "" {
					part.MediaResolution = &MediaResolution{Level: mediaResolution}
				}
				content.Parts = append(content.Parts, part)
			case llm.ContinuationToken:
				content.Parts = append(content.Parts, Part{ThoughtSignature: actual.Value})
			default:
				return nil, fmt.Errorf("turn %d: unsupported segment %T", i, segment)
			}
		}
		req.Contents = append(req.Contents, content)
	}
	return req, nil
}

func toRole(role llm.Role) (string, error) {
	switch role {
	case llm.RoleRequester:
		return roleUser, nil
	case llm.RoleResponder:
		return roleModel, nil
	}
	return "", fmt.Errorf("unsupported role: %q", role)
}

// ToLLMResponse converts a Response to an llm.GenerateResponse. A part carrying a
// thought signature yields its payload segment followed by a continuation token.
func ToLLMResponse(resp *Response) (*llm.GenerateResponse, error) {
	ret := &llm.GenerateResponse{
		Candidates: make([]llm.Turn, 0, len(resp.Candidates)),
		Model:      resp.ModelVersion,
	}
	for _, candidate := range resp.Candidates {
		turn := llm.Turn{Role: llm.RoleResponder}
		for _, part := range candidate.Content.Parts {
			switch {
			case part.InlineData != nil:
				data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode inline data: %w", err)
				}
				turn.Segments = append(turn.Segments, llm.ImageSegment{Data: data, MimeType: part.InlineData.MimeType})
			case part.Text != "" && !part.Thought:
				turn.Segments = append(turn.Segments, llm.TextSegment{Text: part.Text})
			}
			if part.ThoughtSignature != "" {
				turn.Segments = append(turn.Segments, llm.ContinuationToken{Value: part.ThoughtSignature})
			}
		}
		ret.Candidates = append(ret.Candidates, turn)
	}
	if resp.UsageMetadata != nil {
		ret.Usage = &llm.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}
	return ret, nil
}
