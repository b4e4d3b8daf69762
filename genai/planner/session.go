package planner

import "github.com/viant/roomplanner/genai/llm"

// Session is the mutable state of one planning interaction.
type Session struct {
	State State
	Mode  Mode
	// History is append-only until Reset.
	History []llm.Turn
	// PendingTokens holds the continuation tokens issued by the most recent
	// responder turn; each responder turn replaces the whole set.
	PendingTokens []llm.ContinuationToken
	// Subject is the uploaded image, attached only to the first requester turn.
	Subject *llm.ImageSegment
	// Derived is the latest generated image.
	Derived *llm.ImageSegment
}

func newSession() *Session {
	return &Session{State: StateEmpty}
}

// clone returns a deep copy that shares no slices with s.
func (s *Session) clone() *Session {
	ret := &Session{
		State:   s.State,
		Mode:    s.Mode,
		Subject: s.Subject.Clone(),
		Derived: s.Derived.Clone(),
	}
	if len(s.History) > 0 {
		ret.History = make([]llm.Turn, 0, len(s.History))
		for _, turn := range s.History {
			ret.History = append(ret.History, turn.Clone())
		}
	}
	if len(s.PendingTokens) > 0 {
		ret.PendingTokens = append([]llm.ContinuationToken(nil), s.PendingTokens...)
	}
	return ret
}

// replayable keeps only segments that may be sent again: text and tokens.
// Image bytes are never re-uploaded once continuation tokens exist.
func replayable(history []llm.Turn) []llm.Turn {
	ret := make([]llm.Turn, 0, len(history)+1)
	for _, turn := range history {
		ret = append(ret, turn.Filter(isReplayable))
	}
	return ret
}

func isReplayable(segment llm.Segment) bool {
	switch segment.(type) {
	case llm.TextSegment, llm.ContinuationToken:
		return true
	}
	return false
}

// partition splits a responder turn into its tokens, the last generated image
// and the joined text.
func partition(turn llm.Turn) ([]llm.ContinuationToken, *llm.ImageSegment, string) {
	var derived *llm.ImageSegment
	if images := turn.Images(); len(images) > 0 {
		derived = &images[len(images)-1]
	}
	return turn.Tokens(), derived, turn.Text()
}
