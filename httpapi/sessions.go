package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// TerminalFactory builds the terminal behind a browser session. The renderer
// must be installed on the returned terminal.
type TerminalFactory func(ctx context.Context, id schema.SessionID, renderer core.Renderer) (*core.Terminal, error)

type session struct {
	id        schema.SessionID
	expiresAt time.Time
	ctx       context.Context
	cancel    context.CancelFunc
	terminal  *core.Terminal
}

type sessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	baseCtx context.Context
	items   map[string]session
	now     func() time.Time
	onClose func(schema.SessionID)
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:     ttl,
		baseCtx: context.Background(),
		items:   make(map[string]session),
		now:     time.Now,
	}
}

// create allocates a token and session context; build attaches the terminal.
func (s *sessionStore) create(build func(ctx context.Context, id schema.SessionID) (*core.Terminal, error)) (string, session, error) {
	token, err := randomToken(32)
	if err != nil {
		return "", session{}, fmt.Errorf("session token: %w", err)
	}
	id := core.NewSessionID()
	ctx, cancel := context.WithCancel(s.baseContext())
	log := logx.WithSession(ctx, id)
	ctx = logx.ContextWithSessionLogger(ctx, log, id, "http")
	terminal, err := build(ctx, id)
	if err != nil {
		cancel()
		return "", session{}, err
	}
	entry := session{
		id:        id,
		expiresAt: s.now().Add(s.ttl),
		ctx:       ctx,
		cancel:    cancel,
		terminal:  terminal,
	}
	s.mu.Lock()
	s.items[token] = entry
	s.mu.Unlock()
	log.Info("session created", "expires", entry.expiresAt.Format(time.RFC3339))
	return token, entry, nil
}

// get returns the live session for token. Expired entries are released on
// sight.
func (s *sessionStore) get(token string) (session, bool) {
	s.mu.Lock()
	entry, ok := s.items[token]
	live := ok && !s.now().After(entry.expiresAt)
	s.mu.Unlock()
	if ok && !live {
		s.remove(token, "session expired")
	}
	if !live {
		return session{}, false
	}
	return entry, true
}

func (s *sessionStore) delete(token string) {
	s.remove(token, "session deleted")
}

// remove drops token and releases its terminal outside the lock.
func (s *sessionStore) remove(token, reason string) {
	s.mu.Lock()
	entry, ok := s.items[token]
	delete(s.items, token)
	s.mu.Unlock()
	if ok {
		s.release(entry)
		logx.WithSession(context.Background(), entry.id).Info(reason)
	}
}

// sweep drops expired sessions that were never looked up again.
func (s *sessionStore) sweep() int {
	now := s.now()
	var tokens []string
	s.mu.Lock()
	for token, entry := range s.items {
		if now.After(entry.expiresAt) {
			tokens = append(tokens, token)
		}
	}
	s.mu.Unlock()
	for _, token := range tokens {
		s.remove(token, "session expired")
	}
	if len(tokens) > 0 {
		logx.Ctx(context.Background()).Debug("session sweep", "expired", len(tokens))
	}
	return len(tokens)
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *sessionStore) release(entry session) {
	if entry.terminal != nil {
		entry.terminal.Close()
	}
	if entry.cancel != nil {
		entry.cancel()
	}
	if s.onClose != nil {
		s.onClose(entry.id)
	}
}

func (s *sessionStore) setBaseContext(ctx context.Context) {
	if ctx == nil {
		return
	}
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	logx.Ctx(context.Background()).Debug("session base context set")
}

func (s *sessionStore) baseContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baseCtx != nil {
		return s.baseCtx
	}
	return context.Background()
}

func randomToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
