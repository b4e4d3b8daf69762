package log

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// EventType represents classification of an event.
type EventType string

const (
	PlannerRequest  EventType = "PLANNER_REQUEST"
	PlannerResponse EventType = "PLANNER_RESPONSE"
	PlannerError    EventType = "PLANNER_ERROR"
)

type Event struct {
	Time      time.Time   `json:"ts"`
	EventType EventType   `json:"eventtype"`
	Payload   interface{} `json:"p"`
}

// Publisher accepts events.
type Publisher interface {
	Publish(e Event)
}

// Collector collects events and fans them out to subscribers.
type Collector struct {
	mu   sync.RWMutex
	subs []chan Event
}

var Default = &Collector{}

// Publish sends an event to all subscribers (non-blocking).
func Publish(e Event) {
	Default.Publish(e)
}

func (c *Collector) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ch := range c.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe returns a receive-only channel for events. buf is channel size.
func (c *Collector) Subscribe(buf int) <-chan Event {
	ch := make(chan Event, buf)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// Close closes all subscriber channels.
func (c *Collector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.subs {
		close(ch)
	}
	c.subs = nil
}

// FileSink writes every event (JSON encoded) to w, filtering by event types if
// provided. The returned channel is closed once the subscription drains.
func (c *Collector) FileSink(w io.Writer, filters ...EventType) <-chan struct{} {
	want := map[EventType]bool{}
	for _, f := range filters {
		want[f] = true
	}
	done := make(chan struct{})
	events := c.Subscribe(100)
	go func() {
		defer close(done)
		enc := json.NewEncoder(w)
		for ev := range events {
			if len(want) > 0 && !want[ev.EventType] {
				continue
			}
			_ = enc.Encode(ev)
		}
	}()
	return done
}

// FileSink attaches a sink to the default collector.
func FileSink(w io.Writer, filters ...EventType) <-chan struct{} {
	return Default.FileSink(w, filters...)
}
