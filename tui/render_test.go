package tui

import (
	"strings"
	"testing"

	"pkt.systems/termfolio/schema"
)

func TestVisibleWidthCountsWideRunes(t *testing.T) {
	cases := map[string]int{
		"hello":                     5,
		ansiBold + "hi" + ansiReset: 2,
		"☕ tea":                     5,
		"🦀":                         2,
		"\x1b]0;title\x07ok":        2,
	}
	for in, want := range cases {
		if got := visibleWidth(in); got != want {
			t.Fatalf("visibleWidth(%q) expected %d, got %d", in, want, got)
		}
	}
}

func TestTrimANSIToWidthKeepsEscapes(t *testing.T) {
	got := trimANSIToWidth(ansiBold+"abcdef"+ansiReset, 3)
	if got != ansiBold+"abc" {
		t.Fatalf("unexpected trim %q", got)
	}
	if got := trimANSIToWidth("ab🦀", 3); got != "ab" {
		t.Fatalf("expected wide rune dropped at the edge, got %q", got)
	}
	if got := trimANSIToWidth("abc", 0); got != "" {
		t.Fatalf("expected empty for zero width, got %q", got)
	}
}

func TestSanitizeOutputLine(t *testing.T) {
	got := sanitizeOutputLine("a\x1b[31mb\x1b[0m\tc\r\x07")
	if got != "ab    c" {
		t.Fatalf("unexpected sanitize %q", got)
	}
}

func TestRenderFrameLayout(t *testing.T) {
	theme := themeForName("matrix")
	view := schema.ViewSnapshot{
		Width:  20,
		Height: 4,
		Lines: []schema.LineSnapshot{
			{Content: "anonym@objz:~$ ls", Type: schema.LineCommand, Color: schema.ColorCyan, Wrapped: []string{"anonym@objz:~$ ls"}},
			{Content: "projects/", Type: schema.LineOutput, Wrapped: []string{"projects/"}},
		},
		Input:    schema.InputSnapshot{Prompt: "$ ", Text: "pwd", Cursor: 1, Mode: schema.InputNormal},
		AtBottom: true,
	}
	lines, row, col := renderFrame(view, theme)
	if len(lines) != 5 {
		t.Fatalf("expected height+1 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], ansiFgRGB(theme.CyanFG)) || !strings.Contains(lines[0], ansiBold) {
		t.Fatalf("expected bold cyan command row, got %q", lines[0])
	}
	if sanitizeOutputLine(lines[1]) != "projects/" {
		t.Fatalf("unexpected output row %q", lines[1])
	}
	if sanitizeOutputLine(lines[2]) != "$ pwd" {
		t.Fatalf("expected input after output, got %q", lines[2])
	}
	if row != 3 || col != 4 {
		t.Fatalf("expected cursor at 3:4, got %d:%d", row, col)
	}
	for _, line := range lines {
		if visibleWidth(line) > 20 {
			t.Fatalf("row exceeds width: %q", line)
		}
	}
}

func TestRenderFrameHidesInputWhileDisabled(t *testing.T) {
	view := schema.ViewSnapshot{
		Width:  20,
		Height: 2,
		Input:  schema.InputSnapshot{Prompt: "$ ", Text: "x", Mode: schema.InputDisabled},
	}
	lines, row, _ := renderFrame(view, themeForName("gruvbox"))
	if row != 0 {
		t.Fatalf("expected hidden cursor, got row %d", row)
	}
	for _, line := range lines {
		if line != "" {
			t.Fatalf("expected blank rows, got %q", lines)
		}
	}
}

func TestRenderInputScrollsToCursor(t *testing.T) {
	input := schema.InputSnapshot{Prompt: "$ ", Text: strings.Repeat("a", 30) + "XYZ", Cursor: 33}
	row, col := renderInput(input, 12, themeForName("outrun"))
	plain := sanitizeOutputLine(row)
	if !strings.HasSuffix(plain, "XYZ") {
		t.Fatalf("expected tail of input visible, got %q", plain)
	}
	if visibleWidth(plain) > 12 || col > 12 {
		t.Fatalf("expected row within width, got %q col %d", plain, col)
	}
}

func TestRenderScrollMarker(t *testing.T) {
	view := schema.ViewSnapshot{
		Width:        30,
		Height:       1,
		ScrollOffset: 7,
		Input:        schema.InputSnapshot{Prompt: "$ ", Mode: schema.InputNormal},
	}
	lines, _, _ := renderFrame(view, themeForName("tokyo"))
	plain := sanitizeOutputLine(lines[0])
	if !strings.HasSuffix(plain, "[-7]") || visibleWidth(plain) != 30 {
		t.Fatalf("expected right-aligned scroll marker, got %q", plain)
	}
}

func TestThemeFallback(t *testing.T) {
	if got := themeForName("nope").Name; got != schema.DefaultTheme {
		t.Fatalf("expected default theme, got %q", got)
	}
	if got := themeForName("Outrun-Electric").Name; got != "outrun" {
		t.Fatalf("expected outrun, got %q", got)
	}
}
