package llm

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no API credential could be resolved
// for a model.
var ErrMissingCredential = errors.New("llm: API credential is not configured")

// Role represents the side of the exchange that produced a turn.
type Role string

const (
	RoleRequester Role = "requester"
	RoleResponder Role = "responder"
)

func (r Role) String() string {
	return string(r)
}

// Segment is one element of a turn. Exactly one of TextSegment, ImageSegment
// or ContinuationToken implements it.
type Segment interface {
	segment()
}

// TextSegment carries plain text.
type TextSegment struct {
	Text string `json:"text"`
}

// ImageSegment carries raw image bytes.
type ImageSegment struct {
	Data     []byte `json:"data"`
	MimeType string `json:"mimeType"`
}

// ContinuationToken is an opaque value issued by the responder that has to be
// echoed back verbatim, in order, before the next requester instruction.
type ContinuationToken struct {
	Value string `json:"value"`
}

func (TextSegment) segment()       {}
func (ImageSegment) segment()      {}
func (ContinuationToken) segment() {}

// Clone returns a deep copy of the image.
func (i *ImageSegment) Clone() *ImageSegment {
	if i == nil {
		return nil
	}
	data := make([]byte, len(i.Data))
	copy(data, i.Data)
	return &ImageSegment{Data: data, MimeType: i.MimeType}
}

// Turn is one exchange unit.
type Turn struct {
	Role     Role      `json:"role"`
	Segments []Segment `json:"segments"`
}

// NewTurn creates a turn for the supplied role.
func NewTurn(role Role, segments ...Segment) Turn {
	return Turn{Role: role, Segments: segments}
}

// Clone returns a copy of the turn whose segment slice (and image bytes) can be
// modified without affecting the receiver.
func (t Turn) Clone() Turn {
	ret := Turn{Role: t.Role, Segments: make([]Segment, 0, len(t.Segments))}
	for _, s := range t.Segments {
		if img, ok := s.(ImageSegment); ok {
			s = *img.Clone()
		}
		ret.Segments = append(ret.Segments, s)
	}
	return ret
}

// Filter returns a copy of the turn retaining only segments accepted by keep.
func (t Turn) Filter(keep func(Segment) bool) Turn {
	ret := Turn{Role: t.Role, Segments: make([]Segment, 0, len(t.Segments))}
	for _, s := range t.Segments {
		if keep(s) {
			ret.Segments = append(ret.Segments, s)
		}
	}
	return ret
}

// Text joins all text segments with a new line.
func (t Turn) Text() string {
	var ret string
	for _, s := range t.Segments {
		if text, ok := s.(TextSegment); ok && text.Text != "" {
			if ret != "" {
				ret += "\n"
			}
			ret += text.Text
		}
	}
	return ret
}

// Tokens returns continuation tokens in original order.
func (t Turn) Tokens() []ContinuationToken {
	var ret []ContinuationToken
	for _, s := range t.Segments {
		if token, ok := s.(ContinuationToken); ok {
			ret = append(ret, token)
		}
	}
	return ret
}

// Images returns image segments in original order.
func (t Turn) Images() []ImageSegment {
	var ret []ImageSegment
	for _, s := range t.Segments {
		if img, ok := s.(ImageSegment); ok {
			ret = append(ret, img)
		}
	}
	return ret
}

// GenerateRequest represents a request to a generative-content model.
type GenerateRequest struct {
	// Model is the remote model identifier.
	Model string `json:"model"`

	// Turns is the ordered conversation to send.
	Turns []Turn `json:"turns"`

	// Options contains additional options for the request.
	Options *Options `json:"options,omitempty"`
}

// GenerateResponse represents a response from a generative-content model.
type GenerateResponse struct {
	// Candidates contains the generated turns; only the first one is used by callers.
	Candidates []Turn `json:"candidates"`

	// Usage contains token usage information.
	Usage *Usage `json:"usage,omitempty"`
	Model string `json:"model,omitempty"`
}

// First returns the first candidate.
func (r *GenerateResponse) First() (Turn, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return Turn{}, false
	}
	return r.Candidates[0], true
}

// Usage contains token usage information.
type Usage struct {
	// PromptTokens is the number of tokens used in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens used in the completion.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used.
	TotalTokens int `json:"total_tokens"`
}

// APIError is a remote failure normalised across providers.
type APIError struct {
	StatusCode int    `json:"code"`
	Status     string `json:"status,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("API error (status %d %s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}
