package core

import (
	"testing"

	"pkt.systems/termfolio/schema"
)

func TestInputEditing(t *testing.T) {
	e := newInputState()
	for _, r := range "cat ~/prjects" {
		e.InsertRune(r)
	}
	for i := 0; i < 5; i++ {
		e.MoveLeft()
	}
	e.InsertRune('o')
	if e.String() != "cat ~/projects" {
		t.Fatalf("expected cat ~/projects, got %q", e.String())
	}
	e.MoveEnd()
	e.Backspace()
	if e.String() != "cat ~/project" || e.Cursor() != 13 {
		t.Fatalf("unexpected state %q cursor %d", e.String(), e.Cursor())
	}
	e.DeleteWordBackward()
	if e.String() != "cat " {
		t.Fatalf("expected word deleted, got %q", e.String())
	}
	e.MoveStart()
	e.Delete()
	if e.String() != "at " || e.Cursor() != 0 {
		t.Fatalf("unexpected delete result %q", e.String())
	}
}

func TestInputKillLine(t *testing.T) {
	e := newInputState()
	e.SetString("echo hello world")
	e.MoveWordLeft()
	e.KillLineEnd()
	if e.String() != "echo hello " {
		t.Fatalf("expected tail killed, got %q", e.String())
	}
	e.MoveLeft()
	e.KillLineStart()
	if e.String() != " " || e.Cursor() != 0 {
		t.Fatalf("expected head killed, got %q cursor %d", e.String(), e.Cursor())
	}
}

func TestInputSetClampsCursor(t *testing.T) {
	e := newInputState()
	e.Set("größe", 99)
	if e.Cursor() != 5 {
		t.Fatalf("expected rune cursor 5, got %d", e.Cursor())
	}
	e.Set("ls", -4)
	if e.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", e.Cursor())
	}
	if e.Mode() != schema.InputNormal {
		t.Fatalf("expected normal mode, got %s", e.Mode())
	}
}
