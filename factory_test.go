package termfolio

import (
	"context"
	"strings"
	"testing"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/schema"
)

func TestTerminalFactoryBuildsIndependentSessions(t *testing.T) {
	factory, err := NewTerminalFactory(schema.ShellConfig{User: "guest", Host: "box", ShellName: "zsh"}, 0)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	var frames int
	first, err := factory(context.Background(), "a", core.RendererFunc(func(schema.ViewSnapshot) { frames++ }))
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := factory(context.Background(), "b", nil)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	ctx := context.Background()
	if err := first.Submit(ctx, "cd projects"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := first.Submit(ctx, "vim"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if first.Cwd() != "/home/objz/projects" || second.Cwd() != "/home/objz" {
		t.Fatalf("expected isolated cwd, got %s and %s", first.Cwd(), second.Cwd())
	}
	if len(second.History()) != 0 {
		t.Fatalf("expected empty history on second session, got %q", second.History())
	}
	rows := strings.Join(first.Snapshot().VisualRows(), "\n")
	if !strings.Contains(rows, "guest@box:~$ cd projects") || !strings.Contains(rows, "zsh: vim: command not found") {
		t.Fatalf("unexpected rows %q", rows)
	}
	if frames == 0 {
		t.Fatalf("expected renderer to receive frames")
	}
}

func TestTerminalFactoryBootIsInstantAtZeroSpeed(t *testing.T) {
	factory, err := NewTerminalFactory(schema.ShellConfig{}, 0)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	term, err := factory(context.Background(), "boot", nil)
	if err != nil {
		t.Fatalf("terminal: %v", err)
	}
	if err := term.Boot(); err != nil {
		t.Fatalf("boot: %v", err)
	}
	if term.Snapshot().Booting {
		t.Fatalf("expected boot finished")
	}
	if len(term.Snapshot().Lines) == 0 {
		t.Fatalf("expected boot output")
	}
}
