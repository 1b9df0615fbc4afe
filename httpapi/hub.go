package httpapi

import (
	"context"
	"sync"
	"time"

	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// StreamEvent is sent to SSE clients.
type StreamEvent struct {
	Seq       uint64               `json:"seq"`
	Type      string               `json:"type"`
	View      *schema.ViewSnapshot `json:"view,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

const (
	eventView   = "view"
	eventClosed = "closed"
)

// Hub broadcasts view snapshots per session.
type Hub struct {
	mu          sync.Mutex
	sessions    map[schema.SessionID]*sessionHub
	historySize int
}

// NewHub constructs a hub with the given history size.
func NewHub(historySize int) *Hub {
	if historySize <= 0 {
		historySize = 32
	}
	return &Hub{
		sessions:    make(map[schema.SessionID]*sessionHub),
		historySize: historySize,
	}
}

// Renderer returns a render func publishing every frame of the session until
// ctx ends.
func (h *Hub) Renderer(ctx context.Context, sessionID schema.SessionID) func(schema.ViewSnapshot) {
	return func(view schema.ViewSnapshot) {
		if ctx.Err() != nil {
			return
		}
		h.PublishView(sessionID, view)
	}
}

// PublishView fans a frame out to subscribers of the session.
func (h *Hub) PublishView(sessionID schema.SessionID, view schema.ViewSnapshot) {
	logx.WithSession(context.Background(), sessionID).Trace("hub view event", "frame", view.Seq, "lines", len(view.Lines))
	h.publish(sessionID, StreamEvent{
		Type:      eventView,
		View:      &view,
		Timestamp: time.Now(),
	})
}

// Subscribe registers a subscriber for a session.
func (h *Hub) Subscribe(sessionID schema.SessionID) (<-chan StreamEvent, func(), uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sh := h.getOrCreateLocked(sessionID)
	ch := make(chan StreamEvent, 256)
	sh.subs[ch] = struct{}{}
	seq := sh.seq
	log := logx.WithSession(context.Background(), sessionID)
	log.Info("hub subscribe", "subs", len(sh.subs))
	var once sync.Once
	unsub := func() {
		once.Do(func() {
			h.mu.Lock()
			remaining := 0
			if _, ok := sh.subs[ch]; ok {
				delete(sh.subs, ch)
				close(ch)
			}
			remaining = len(sh.subs)
			h.mu.Unlock()
			log.Info("hub unsubscribe", "subs", remaining)
		})
	}
	return ch, unsub, seq
}

// Replay returns events after the provided seq.
func (h *Hub) Replay(sessionID schema.SessionID, after uint64) []StreamEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	sh := h.sessions[sessionID]
	if sh == nil {
		return nil
	}
	events := make([]StreamEvent, 0, len(sh.history))
	for _, event := range sh.history {
		if event.Seq > after {
			events = append(events, event)
		}
	}
	logx.WithSession(context.Background(), sessionID).Debug("hub replay", "after", after, "count", len(events))
	return events
}

// Remove announces the end of a session and drops its subscribers and history.
func (h *Hub) Remove(sessionID schema.SessionID) {
	h.publish(sessionID, StreamEvent{Type: eventClosed, Timestamp: time.Now()})
	h.mu.Lock()
	sh := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	if sh != nil {
		for sub := range sh.subs {
			delete(sh.subs, sub)
			close(sub)
		}
	}
	h.mu.Unlock()
	logx.WithSession(context.Background(), sessionID).Debug("hub session removed")
}

func (h *Hub) publish(sessionID schema.SessionID, event StreamEvent) {
	h.mu.Lock()
	sh := h.getOrCreateLocked(sessionID)
	sh.seq++
	event.Seq = sh.seq
	sh.history = append(sh.history, event)
	if len(sh.history) > h.historySize {
		sh.history = sh.history[len(sh.history)-h.historySize:]
	}
	dropped := 0
	for sub := range sh.subs {
		select {
		case sub <- event:
		default:
			dropped++
		}
	}
	h.mu.Unlock()

	if dropped > 0 {
		logx.WithSession(context.Background(), sessionID).Warn("hub event dropped", "type", event.Type, "dropped", dropped)
	}
}

func (h *Hub) getOrCreateLocked(sessionID schema.SessionID) *sessionHub {
	sh := h.sessions[sessionID]
	if sh == nil {
		sh = &sessionHub{
			subs: make(map[chan StreamEvent]struct{}),
		}
		h.sessions[sessionID] = sh
	}
	return sh
}

type sessionHub struct {
	seq     uint64
	history []StreamEvent
	subs    map[chan StreamEvent]struct{}
}
