package planner

import (
	"github.com/viant/roomplanner/genai/llm"
	elog "github.com/viant/roomplanner/internal/log"
)

// Option customises a Manager.
type Option func(m *Manager)

// WithPrompts overrides mode instructions; empty fields keep defaults.
func WithPrompts(prompts Prompts) Option {
	return func(m *Manager) { m.prompts = prompts }
}

// WithGenerateOptions sets options attached to every outbound request.
func WithGenerateOptions(options *llm.Options) Option {
	return func(m *Manager) { m.options = options }
}

// WithPublisher routes planner events to publisher instead of the default collector.
func WithPublisher(publisher elog.Publisher) Option {
	return func(m *Manager) { m.publisher = publisher }
}

// WithID sets the session identifier used in events.
func WithID(id string) Option {
	return func(m *Manager) {
		if id != "" {
			m.id = id
		}
	}
}
