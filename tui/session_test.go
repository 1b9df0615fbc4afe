package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/command"
	"pkt.systems/termfolio/schema"
)

func newTestTerminal(t *testing.T, session *Session) *core.Terminal {
	t.Helper()
	h := command.NewHandler(nil, command.HandlerConfig{})
	term, err := core.NewTerminal(context.Background(), schema.ShellConfig{Width: 60, Height: 12}, core.TerminalDeps{
		Dispatcher: h,
		Completer:  command.NewCompleter(h.FS()),
		Renderer:   session.Renderer(),
	})
	if err != nil {
		t.Fatalf("new terminal: %v", err)
	}
	return term
}

func TestSessionRunsUntilExit(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("echo hello world\rexit\r"), &out, "matrix")
	term := newTestTerminal(t, session)

	if err := session.Run(context.Background(), term, nil, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !term.Closed() {
		t.Fatalf("expected terminal closed after exit")
	}
	got := out.String()
	for _, want := range []string{"\x1b[?1049h", "hello world", "logout", "\x1b[?1049l"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
	if !strings.HasSuffix(got, "\x1b[?1049l\x1b[?25h") {
		t.Fatalf("expected alt screen restored last")
	}
}

func TestSessionCtrlDOnEmptyInputExits(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(strings.NewReader("\x04"), &out, "gruvbox")
	term := newTestTerminal(t, session)
	if err := session.Run(context.Background(), term, nil, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !term.Closed() {
		t.Fatalf("expected ctrl-d to end the session")
	}
}

func TestSessionAppliesWindowChanges(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	session := NewSession(pr, &out, "outrun")
	term := newTestTerminal(t, session)

	winCh := make(chan Window)
	done := make(chan error, 1)
	go func() {
		done <- session.Run(context.Background(), term, winCh, false)
	}()
	winCh <- Window{Width: 40, Height: 10}
	go func() {
		_, _ = io.WriteString(pw, "exit\r")
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not end")
	}
	view := term.Snapshot()
	if view.Width != 40 || view.Height != 9 {
		t.Fatalf("expected 40x9 viewport, got %dx%d", view.Width, view.Height)
	}
}

func TestSessionStopsOnContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	session := NewSession(pr, &out, "matrix")
	term := newTestTerminal(t, session)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx, term, nil, false)
	}()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not stop after cancel")
	}
	if term.Closed() {
		t.Fatalf("expected terminal left open for the caller")
	}
}

func TestRendererKeepsNewestFrame(t *testing.T) {
	session := NewSession(strings.NewReader(""), io.Discard, "matrix")
	r := session.Renderer()
	r.Render(schema.ViewSnapshot{Seq: 5})
	r.Render(schema.ViewSnapshot{Seq: 3})
	view, ok := session.paint()
	if !ok || view.Seq != 5 {
		t.Fatalf("expected newest frame 5, got %d", view.Seq)
	}
}
