package game

import (
	"sync"

	"github.com/mcoot/geofinder-go/internal/model"
)

// fakeConn records every event sent to a connection
type fakeConn struct {
	mu     sync.Mutex
	events []model.Event
}

func newFakeConn() *fakeConn {
	return &fakeConn{}
}

func (c *fakeConn) Send(ev model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *fakeConn) ofType(t model.EventType) []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var matched []model.Event
	for _, ev := range c.events {
		if ev.Type == t {
			matched = append(matched, ev)
		}
	}
	return matched
}

func (c *fakeConn) last(t model.EventType) (model.Event, bool) {
	matched := c.ofType(t)
	if len(matched) == 0 {
		return model.Event{}, false
	}
	return matched[len(matched)-1], true
}

func (c *fakeConn) count(t model.EventType) int {
	return len(c.ofType(t))
}

// fakeRecorder captures completed-game summaries
type fakeRecorder struct {
	mu        sync.Mutex
	summaries []*model.GameSummary
}

func (f *fakeRecorder) RecordGame(summary *model.GameSummary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, summary)
}

func (f *fakeRecorder) recorded() []*model.GameSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.GameSummary(nil), f.summaries...)
}
