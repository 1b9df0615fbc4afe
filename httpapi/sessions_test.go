package httpapi

import (
	"context"
	"testing"
	"time"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/command"
	"pkt.systems/termfolio/schema"
)

type sessionTestKey struct{}

func newTestTerminal(ctx context.Context, _ schema.SessionID, renderer core.Renderer) (*core.Terminal, error) {
	handler := command.NewHandler(nil, command.HandlerConfig{})
	return core.NewTerminal(ctx, schema.ShellConfig{}, core.TerminalDeps{
		Dispatcher: handler,
		Completer:  command.NewCompleter(handler.FS()),
		Renderer:   renderer,
	})
}

func buildTestTerminal(ctx context.Context, id schema.SessionID) (*core.Terminal, error) {
	return newTestTerminal(ctx, id, nil)
}

func TestSessionStoreCreateGetDelete(t *testing.T) {
	store := newSessionStore(time.Hour)
	var closedID schema.SessionID
	store.onClose = func(id schema.SessionID) { closedID = id }
	token, sess, err := store.create(buildTestTerminal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" || sess.id == "" {
		t.Fatalf("expected token and session id")
	}
	if sess.ctx == nil || sess.terminal == nil {
		t.Fatalf("expected session context and terminal")
	}
	if _, ok := store.get(token); !ok {
		t.Fatalf("expected session to be found")
	}
	store.delete(token)
	if _, ok := store.get(token); ok {
		t.Fatalf("expected session to be deleted")
	}
	select {
	case <-sess.ctx.Done():
	default:
		t.Fatalf("expected session context to be canceled")
	}
	if !sess.terminal.Closed() {
		t.Fatalf("expected terminal to be closed")
	}
	if closedID != sess.id {
		t.Fatalf("expected close callback for %q, got %q", sess.id, closedID)
	}
}

func TestSessionStoreExpiration(t *testing.T) {
	store := newSessionStore(time.Minute)
	now := time.Date(2025, time.May, 27, 13, 28, 47, 0, time.UTC)
	store.now = func() time.Time { return now }
	token, sess, err := store.create(buildTestTerminal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, ok := store.get(token); ok {
		t.Fatalf("expected expired session")
	}
	select {
	case <-sess.ctx.Done():
	default:
		t.Fatalf("expected session context to be canceled")
	}
}

func TestSessionStoreSweep(t *testing.T) {
	store := newSessionStore(time.Minute)
	now := time.Date(2025, time.May, 27, 13, 28, 47, 0, time.UTC)
	store.now = func() time.Time { return now }
	for i := 0; i < 3; i++ {
		if _, _, err := store.create(buildTestTerminal); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	now = now.Add(30 * time.Second)
	if _, _, err := store.create(buildTestTerminal); err != nil {
		t.Fatalf("create: %v", err)
	}
	now = now.Add(45 * time.Second)
	if got := store.sweep(); got != 3 {
		t.Fatalf("expected 3 expired sessions, got %d", got)
	}
	if got := store.count(); got != 1 {
		t.Fatalf("expected 1 remaining session, got %d", got)
	}
}

func TestSessionStoreBaseContext(t *testing.T) {
	store := newSessionStore(time.Hour)
	baseKey := sessionTestKey{}
	base := context.WithValue(context.Background(), baseKey, "value")
	store.setBaseContext(base)
	_, sess, err := store.create(buildTestTerminal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := sess.ctx.Value(baseKey); got != "value" {
		t.Fatalf("expected base context value, got %v", got)
	}
}

func TestSessionStoreCreateFailureCancels(t *testing.T) {
	store := newSessionStore(time.Hour)
	var captured context.Context
	_, _, err := store.create(func(ctx context.Context, _ schema.SessionID) (*core.Terminal, error) {
		captured = ctx
		return nil, schema.ErrInvalidDimensions
	})
	if err == nil {
		t.Fatalf("expected create error")
	}
	if captured.Err() == nil {
		t.Fatalf("expected context canceled after failed build")
	}
	if store.count() != 0 {
		t.Fatalf("expected no stored sessions")
	}
}
