package tui

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"pkt.systems/termfolio/schema"
)

// renderFrame paints a view as screen rows followed by the input row. The
// returned cursor position is 1-based; row 0 means the cursor is hidden.
func renderFrame(view schema.ViewSnapshot, theme tuiTheme) ([]string, int, int) {
	width := view.Width
	if width <= 0 {
		width = schema.DefaultWidth
	}
	height := view.Height
	if height <= 0 {
		height = schema.DefaultHeight - 1
	}
	lines := make([]string, 0, height+1)
	for _, line := range view.Lines {
		style := ansiFgRGB(theme.colorFor(line.Color, line.Type))
		if line.Type == schema.LineCommand {
			style = ansiBold + style
		}
		for _, row := range line.Wrapped {
			if len(lines) >= height {
				break
			}
			lines = append(lines, styleRow(sanitizeOutputLine(row), width, style))
		}
	}

	cursorRow, cursorCol := 0, 0
	switch {
	case view.Closed, view.Booting, view.Input.Mode == schema.InputDisabled:
		lines = append(lines, "")
	default:
		row, col := renderInput(view.Input, width, theme)
		if view.ScrollOffset > 0 {
			row = withScrollMarker(row, view.ScrollOffset, width, theme)
		}
		lines = append(lines, row)
		cursorRow, cursorCol = len(lines), col
	}
	for len(lines) < height+1 {
		lines = append(lines, "")
	}
	return lines, cursorRow, cursorCol
}

func styleRow(text string, width int, style string) string {
	text = trimANSIToWidth(text, width)
	if text == "" {
		return ""
	}
	return style + text + ansiReset
}

// renderInput draws prompt and input on one row, sliding the input left so
// the cursor stays visible.
func renderInput(input schema.InputSnapshot, width int, theme tuiTheme) (string, int) {
	prompt := sanitizeOutputLine(input.Prompt)
	promptWidth := runewidth.StringWidth(prompt)
	if promptWidth >= width {
		prompt = runewidth.Truncate(prompt, width-1, "")
		promptWidth = runewidth.StringWidth(prompt)
	}
	runes := []rune(sanitizeOutputLine(input.Text))
	cursor := input.Cursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	avail := width - promptWidth
	if avail < 1 {
		avail = 1
	}
	start := 0
	for runewidth.StringWidth(string(runes[start:cursor])) >= avail && start < cursor {
		start++
	}
	visible := runewidth.Truncate(string(runes[start:]), avail, "")
	col := promptWidth + runewidth.StringWidth(string(runes[start:cursor])) + 1

	var b strings.Builder
	b.WriteString(ansiBold)
	b.WriteString(ansiFgRGB(theme.PromptFG))
	b.WriteString(prompt)
	b.WriteString(ansiReset)
	b.WriteString(ansiFgRGB(theme.OutputFG))
	b.WriteString(visible)
	b.WriteString(ansiReset)
	return b.String(), col
}

func withScrollMarker(row string, offset, width int, theme tuiTheme) string {
	marker := fmt.Sprintf("[-%d]", offset)
	used := visibleWidth(row)
	pad := width - used - len(marker)
	if pad < 1 {
		return row
	}
	return row + strings.Repeat(" ", pad) + ansiDim + ansiFgRGB(theme.MetaFG) + marker + ansiReset
}

func sanitizeOutputLine(text string) string {
	var b strings.Builder
	for seg := range segments(text) {
		switch {
		case seg.escape:
		case seg.r == utf8.RuneError && len(seg.text) == 1:
		case seg.r == '\t':
			b.WriteString("    ")
		case seg.r < 0x20 || seg.r == 0x7f:
		default:
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// visibleWidth counts terminal columns, ignoring escape sequences. Wide
// glyphs count as two.
func visibleWidth(text string) int {
	width := 0
	for seg := range segments(text) {
		if !seg.escape {
			width += runewidth.RuneWidth(seg.r)
		}
	}
	return width
}

// trimANSIToWidth clips text to width columns, keeping escape sequences. A
// wide glyph that would straddle the edge is dropped.
func trimANSIToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for seg := range segments(text) {
		if !seg.escape {
			w := runewidth.RuneWidth(seg.r)
			if used+w > width {
				break
			}
			used += w
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// segment is one escape sequence or one rune of text.
type segment struct {
	text   string
	escape bool
	r      rune
}

// segments walks text yielding escape sequences whole. Invalid UTF-8 bytes
// come through one at a time as utf8.RuneError.
func segments(text string) iter.Seq[segment] {
	return func(yield func(segment) bool) {
		for i := 0; i < len(text); {
			if text[i] == 0x1b {
				end := escapeEnd(text, i)
				if !yield(segment{text: text[i:end], escape: true}) {
					return
				}
				i = end
				continue
			}
			r, size := utf8.DecodeRuneInString(text[i:])
			if !yield(segment{text: text[i : i+size], r: r}) {
				return
			}
			i += size
		}
	}
}

// escapeEnd returns the index just past the escape sequence starting at
// text[start]. CSI ends at a final byte, OSC at BEL or ST, anything else
// after one byte.
func escapeEnd(text string, start int) int {
	i := start + 1
	if i >= len(text) {
		return i
	}
	switch text[i] {
	case '[':
		for i++; i < len(text); i++ {
			if c := text[i]; c >= 0x40 && c <= 0x7e {
				return i + 1
			}
		}
	case ']':
		for i++; i < len(text); i++ {
			if text[i] == 0x07 {
				return i + 1
			}
			if text[i] == 0x1b && i+1 < len(text) && text[i+1] == '\\' {
				return i + 2
			}
		}
	default:
		return i + 1
	}
	return len(text)
}
