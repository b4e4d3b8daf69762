// Package usage aggregates token usage reported by model clients.
package usage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viant/roomplanner/genai/llm"
)

// Stat accumulates token numbers for a single model.
type Stat struct {
	Calls            int
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Aggregator collects usage grouped by model name.
type Aggregator struct {
	mux      sync.RWMutex
	PerModel map[string]*Stat
}

// OnUsage satisfies base.UsageListener so the aggregator can be passed
// directly to provider clients.
func (a *Aggregator) OnUsage(model string, u *llm.Usage) {
	if u == nil {
		return
	}
	a.mux.Lock()
	defer a.mux.Unlock()
	if a.PerModel == nil {
		a.PerModel = map[string]*Stat{}
	}
	stat, ok := a.PerModel[model]
	if !ok {
		stat = &Stat{}
		a.PerModel[model] = stat
	}
	stat.Calls++
	stat.PromptTokens += u.PromptTokens
	stat.CompletionTokens += u.CompletionTokens
	stat.TotalTokens += u.TotalTokens
}

// Totals returns accumulated numbers across all tracked models.
func (a *Aggregator) Totals() Stat {
	a.mux.RLock()
	defer a.mux.RUnlock()
	var ret Stat
	for _, stat := range a.PerModel {
		ret.Calls += stat.Calls
		ret.PromptTokens += stat.PromptTokens
		ret.CompletionTokens += stat.CompletionTokens
		ret.TotalTokens += stat.TotalTokens
	}
	return ret
}

// Keys returns sorted list of model names.
func (a *Aggregator) Keys() []string {
	a.mux.RLock()
	defer a.mux.RUnlock()
	keys := make([]string, 0, len(a.PerModel))
	for k := range a.PerModel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders one line per model.
func (a *Aggregator) String() string {
	keys := a.Keys()
	if len(keys) == 0 {
		return "no model calls"
	}
	a.mux.RLock()
	defer a.mux.RUnlock()
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		s := a.PerModel[k]
		lines = append(lines, fmt.Sprintf("%v: %d call(s), %d tokens (prompt %d, completion %d)", k, s.Calls, s.TotalTokens, s.PromptTokens, s.CompletionTokens))
	}
	return strings.Join(lines, "\n")
}
