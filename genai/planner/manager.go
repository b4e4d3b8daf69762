package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/roomplanner/genai/llm"
	elog "github.com/viant/roomplanner/internal/log"
)

// AnalysisOutcome is the result of the first turn.
type AnalysisOutcome struct {
	Text string
	// Rooms is populated in floor-plan mode only.
	Rooms []string
	Image *llm.ImageSegment
	Usage *llm.Usage
}

// EditOutcome is the result of an edit turn.
type EditOutcome struct {
	Text  string
	Image *llm.ImageSegment
	Usage *llm.Usage
}

// Manager owns one Session and builds every outbound request for it.
//
// At most one remote call is in flight at a time; a concurrent call is
// rejected with KindNotReady rather than queued. Session state is mutated only
// after a call completes, and a response that arrives after Reset or Dispose
// is dropped.
type Manager struct {
	id        string
	finder    llm.Finder
	modelID   string
	prompts   Prompts
	options   *llm.Options
	publisher elog.Publisher

	mux      sync.Mutex
	session  *Session
	epoch    uint64
	disposed bool
}

var errDiscarded = notReady("session was reset while the request was in flight")

// New creates a manager resolving modelID through finder.
func New(finder llm.Finder, modelID string, options ...Option) *Manager {
	ret := &Manager{
		id:        uuid.New().String(),
		finder:    finder,
		modelID:   modelID,
		prompts:   DefaultPrompts(),
		publisher: elog.Default,
		session:   newSession(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// ID returns the session identifier.
func (m *Manager) ID() string { return m.id }

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.session.State
}

// Snapshot returns a deep copy of the session.
func (m *Manager) Snapshot() *Session {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.session.clone()
}

// StartAnalysis sends the mode instruction together with the image and records
// the exchange as the first requester/responder pair.
func (m *Manager) StartAnalysis(ctx context.Context, image *llm.ImageSegment, mode Mode) (*AnalysisOutcome, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, notReady("image is empty")
	}
	if !mode.Valid() {
		return nil, notReady(fmt.Sprintf("unsupported mode: %q", mode))
	}
	subject := image.Clone()

	m.mux.Lock()
	if err := m.begin(StateEmpty, StateAnalyzing); err != nil {
		m.mux.Unlock()
		return nil, err
	}
	epoch := m.epoch
	m.mux.Unlock()

	requester := llm.NewTurn(llm.RoleRequester,
		llm.TextSegment{Text: m.prompts.Instruction(mode)},
		*subject,
	)
	request := &llm.GenerateRequest{Turns: []llm.Turn{requester}, Options: m.options}
	responder, usage, callErr := m.generate(ctx, "analysis", request)

	m.mux.Lock()
	defer m.mux.Unlock()
	if err := m.stale(epoch); err != nil {
		return nil, err
	}
	if callErr != nil {
		m.session.State = StateEmpty
		return nil, callErr
	}
	tokens, derived, text := partition(responder)
	session := m.session
	session.Mode = mode
	session.Subject = subject
	session.History = append(session.History, requester, responder)
	session.PendingTokens = tokens
	if derived != nil {
		session.Derived = derived
	}
	session.State = StateAnalyzed

	ret := &AnalysisOutcome{Text: text, Image: derived.Clone(), Usage: usage}
	if mode == ModeFloorPlan {
		ret.Rooms = ExtractRooms(text)
	}
	return ret, nil
}

// ApplyEdit replays the text/token history, then sends the pending tokens
// followed by prompt as the new requester turn.
func (m *Manager) ApplyEdit(ctx context.Context, prompt string) (*EditOutcome, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, notReady("edit prompt is blank")
	}

	m.mux.Lock()
	if !m.disposed && m.session.State == StateAnalyzed && len(m.session.PendingTokens) == 0 {
		m.mux.Unlock()
		return nil, notReady("no continuation tokens to edit with")
	}
	if err := m.begin(StateAnalyzed, StateEditing); err != nil {
		m.mux.Unlock()
		return nil, err
	}
	turns := replayable(m.session.History)
	current := llm.Turn{Role: llm.RoleRequester, Segments: make([]llm.Segment, 0, len(m.session.PendingTokens)+1)}
	for _, token := range m.session.PendingTokens {
		current.Segments = append(current.Segments, token)
	}
	current.Segments = append(current.Segments, llm.TextSegment{Text: prompt})
	turns = append(turns, current)
	epoch := m.epoch
	m.mux.Unlock()

	request := &llm.GenerateRequest{Turns: turns, Options: m.options}
	responder, usage, callErr := m.generate(ctx, "edit", request)

	m.mux.Lock()
	defer m.mux.Unlock()
	if err := m.stale(epoch); err != nil {
		return nil, err
	}
	if callErr != nil {
		m.session.State = StateAnalyzed
		return nil, callErr
	}
	tokens, derived, text := partition(responder)
	session := m.session
	session.History = append(session.History, llm.NewTurn(llm.RoleRequester, llm.TextSegment{Text: prompt}), responder)
	session.PendingTokens = tokens
	if derived != nil {
		session.Derived = derived
	}
	session.State = StateAnalyzed
	return &EditOutcome{Text: text, Image: derived.Clone(), Usage: usage}, nil
}

// Reset clears the session; an in-flight response will be discarded.
func (m *Manager) Reset() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.epoch++
	m.session = newSession()
}

// Dispose resets the session and rejects any further operation.
func (m *Manager) Dispose() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.disposed = true
	m.epoch++
	m.session = newSession()
}

// begin moves the session from expected into the in-flight state next.
func (m *Manager) begin(expected, next State) *Error {
	if m.disposed {
		return notReady("session is disposed")
	}
	state := m.session.State
	if state.InFlight() {
		return notReady("a request is already in flight")
	}
	if state != expected {
		return notReady(fmt.Sprintf("session is %v", state))
	}
	m.session.State = next
	return nil
}

func (m *Manager) stale(epoch uint64) *Error {
	if m.disposed || epoch != m.epoch {
		return errDiscarded
	}
	return nil
}

func (m *Manager) generate(ctx context.Context, operation string, request *llm.GenerateRequest) (llm.Turn, *llm.Usage, error) {
	m.publish(elog.PlannerRequest, m.digest(operation, request.Turns, nil))
	model, err := m.finder.Find(ctx, m.modelID)
	if err != nil {
		return llm.Turn{}, nil, m.fail(operation, err)
	}
	response, err := model.Generate(ctx, request)
	if err != nil {
		return llm.Turn{}, nil, m.fail(operation, err)
	}
	turn, ok := response.First()
	if !ok {
		return llm.Turn{}, nil, m.fail(operation, &Error{Kind: KindUnknown, Message: "model returned no candidates"})
	}
	turn.Role = llm.RoleResponder
	m.publish(elog.PlannerResponse, m.digest(operation, []llm.Turn{turn}, nil))
	return turn, response.Usage, nil
}

func (m *Manager) fail(operation string, err error) *Error {
	ret := classify(err)
	m.publish(elog.PlannerError, m.digest(operation, nil, ret))
	return ret
}

// exchange is the event payload; it never carries image bytes.
type exchange struct {
	Session   string `json:"session"`
	Operation string `json:"operation"`
	Turns     int    `json:"turns,omitempty"`
	Images    int    `json:"images,omitempty"`
	Tokens    int    `json:"tokens,omitempty"`
	Text      string `json:"text,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (m *Manager) digest(operation string, turns []llm.Turn, err *Error) *exchange {
	ret := &exchange{Session: m.id, Operation: operation, Turns: len(turns)}
	for _, turn := range turns {
		ret.Images += len(turn.Images())
		ret.Tokens += len(turn.Tokens())
	}
	if n := len(turns); n > 0 {
		ret.Text = turns[n-1].Text()
	}
	if err != nil {
		ret.Kind = err.Kind.String()
		ret.Error = err.Error()
	}
	return ret
}

func (m *Manager) publish(eventType elog.EventType, payload interface{}) {
	if m.publisher == nil {
		return
	}
	m.publisher.Publish(elog.Event{EventType: eventType, Payload: payload})
}
