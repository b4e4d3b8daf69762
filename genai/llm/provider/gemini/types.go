package gemini

// Request represents the request structure for Gemini API
type Request struct {
	Contents          []Content          `json:"contents"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
	SafetySettings    []SafetySetting    `json:"safetySettings,omitempty"`
}

// Content represents a content in the Gemini API request
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// SystemInstruction represents a system instruction in the Gemini API request
type SystemInstruction struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part represents a part in a content for the Gemini API
type Part struct {
	Text             string           `json:"text,omitempty"`
	InlineData       *InlineData      `json:"inlineData,omitempty"`
	MediaResolution  *MediaResolution `json:"mediaResolution,omitempty"`
	Thought          bool             `json:"thought,omitempty"`
	ThoughtSignature string           `json:"thoughtSignature,omitempty"`
}

// InlineData represents inline data (like images) in the Gemini API
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// MediaResolution is the per-part resolution hint for inline media.
type MediaResolution struct {
	Level string `json:"level"`
}

// GenerationConfig represents generation configuration for the Gemini API
type GenerationConfig struct {
	Temperature        float64      `json:"temperature,omitempty"`
	CandidateCount     int          `json:"candidateCount,omitempty"`
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *ImageConfig `json:"imageConfig,omitempty"`
}

// ImageConfig controls generated image shape.
type ImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

// SafetySetting represents a safety setting for the Gemini API
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// Response represents the response structure from Gemini API
type Response struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
}

// Candidate represents a candidate in the Gemini API response
type Candidate struct {
	Content       Content        `json:"content"`
	FinishReason  string         `json:"finishReason,omitempty"`
	Index         int            `json:"index"`
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// SafetyRating represents a safety rating in the Gemini API response
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
}

// PromptFeedback represents feedback about the prompt in the Gemini API response
type PromptFeedback struct {
	BlockReason   string         `json:"blockReason,omitempty"`
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// UsageMetadata represents token usage information in the Gemini API response
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// ErrorResponse is the error envelope returned with non-200 statuses.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
