package base

import "github.com/viant/roomplanner/genai/llm"

// UsageListener is a callback used by provider clients to report token usage
// for each successful request.  It is declared as a function type so users can
// pass simple lambdas (e.g. `WithUsageListener(func(model string, usage *llm.Usage){…})`).
type UsageListener func(model string, usage *llm.Usage)

// OnUsage makes the function compatible with the method-based invocation used
// across provider implementations.
func (f UsageListener) OnUsage(model string, usage *llm.Usage) {
	if f == nil || usage == nil {
		return
	}
	f(model, usage)
}
