package core

import (
	"strings"
	"time"

	"pkt.systems/termfolio/schema"
)

// BufferLine is one logical output line and its wrapped rows.
type BufferLine struct {
	Seq       uint64
	Content   string
	Type      schema.LineType
	Color     string
	Timestamp time.Time
	Wrapped   []string
}

func (l BufferLine) snapshot() schema.LineSnapshot {
	return schema.LineSnapshot{
		Seq:     l.Seq,
		Content: l.Content,
		Type:    l.Type,
		Color:   l.Color,
		Wrapped: append([]string(nil), l.Wrapped...),
	}
}

// LineBuffer stores scrollback lines and scroll state.
// scrollOffset counts visual rows from the bottom; 0 means pinned to the bottom.
type LineBuffer struct {
	lines        []BufferLine
	maxLines     int
	width        int
	height       int
	scrollOffset int
	totalVisual  int
	seq          uint64
	now          func() time.Time
}

// NewLineBuffer returns a buffer with default limits applied.
func NewLineBuffer(maxLines, width, height int) *LineBuffer {
	if maxLines <= 0 {
		maxLines = schema.DefaultBufferMaxLines
	}
	if width < 1 {
		width = schema.DefaultWidth
	}
	if height < 1 {
		height = schema.DefaultHeight
	}
	return &LineBuffer{maxLines: maxLines, width: width, height: height, now: time.Now}
}

// AddLine appends one line. When the view is scrolled up the offset grows by
// the appended rows so the visible window stays put.
func (b *LineBuffer) AddLine(content string, lineType schema.LineType, color string) {
	b.seq++
	line := BufferLine{
		Seq:       b.seq,
		Content:   content,
		Type:      lineType,
		Color:     color,
		Timestamp: b.now(),
		Wrapped:   WrapLine(content, b.width),
	}
	b.lines = append(b.lines, line)
	b.totalVisual += len(line.Wrapped)
	if b.scrollOffset > 0 {
		b.scrollOffset += len(line.Wrapped)
	}
	if len(b.lines) > b.maxLines {
		trim := len(b.lines) - b.maxLines
		for _, evicted := range b.lines[:trim] {
			b.totalVisual -= len(evicted.Wrapped)
		}
		b.lines = append([]BufferLine(nil), b.lines[trim:]...)
	}
	b.clampScroll()
}

// AddLines splits text on newlines and appends every piece, empty ones included.
func (b *LineBuffer) AddLines(text string, lineType schema.LineType, color string) {
	for _, piece := range strings.Split(text, "\n") {
		b.AddLine(strings.TrimSuffix(piece, "\r"), lineType, color)
	}
}

// AddCommand echoes a submitted command line.
func (b *LineBuffer) AddCommand(prompt, input string) {
	b.AddLine(prompt+input, schema.LineCommand, schema.ColorCyan)
}

// ReplaceLast rewrites the newest line in place. It reports false on an empty buffer.
func (b *LineBuffer) ReplaceLast(content string) bool {
	if len(b.lines) == 0 {
		return false
	}
	last := &b.lines[len(b.lines)-1]
	before := len(last.Wrapped)
	last.Content = content
	last.Wrapped = WrapLine(content, b.width)
	b.totalVisual += len(last.Wrapped) - before
	if b.scrollOffset > 0 {
		b.scrollOffset += len(last.Wrapped) - before
	}
	b.clampScroll()
	return true
}

// SetDimensions rewraps every line for the new width.
func (b *LineBuffer) SetDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return schema.ErrInvalidDimensions
	}
	b.height = height
	if width != b.width {
		b.width = width
		b.totalVisual = 0
		for i := range b.lines {
			b.lines[i].Wrapped = WrapLine(b.lines[i].Content, width)
			b.totalVisual += len(b.lines[i].Wrapped)
		}
	}
	b.clampScroll()
	return nil
}

// Dimensions returns the wrap width and viewport height.
func (b *LineBuffer) Dimensions() (int, int) {
	return b.width, b.height
}

// VisibleLines returns the newest whole lines whose combined row count fits
// in maxVisual plus the scroll offset, oldest first. A line that would
// overflow the budget is excluded, never split.
func (b *LineBuffer) VisibleLines(maxVisual int) []BufferLine {
	budget := maxVisual + b.scrollOffset
	used := 0
	start := len(b.lines)
	for i := len(b.lines) - 1; i >= 0; i-- {
		n := len(b.lines[i].Wrapped)
		if used+n > budget {
			break
		}
		used += n
		start = i
	}
	out := make([]BufferLine, len(b.lines)-start)
	copy(out, b.lines[start:])
	return out
}

// Clear empties the buffer and pins the view to the bottom.
func (b *LineBuffer) Clear() {
	b.lines = nil
	b.totalVisual = 0
	b.scrollOffset = 0
}

// ScrollUp moves the view n rows toward older output.
func (b *LineBuffer) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	b.scrollOffset += n
	b.clampScroll()
}

// ScrollDown moves the view n rows toward newer output.
func (b *LineBuffer) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	b.scrollOffset -= n
	b.clampScroll()
}

// ShouldAutoScroll reports whether the view is pinned to the bottom.
func (b *LineBuffer) ShouldAutoScroll() bool {
	return b.scrollOffset == 0
}

// AutoScrollToBottom resets the offset only when the view is already pinned.
func (b *LineBuffer) AutoScrollToBottom() {
	if b.ShouldAutoScroll() {
		b.scrollOffset = 0
	}
}

// ScrollOffset returns the offset in rows from the bottom.
func (b *LineBuffer) ScrollOffset() int {
	return b.scrollOffset
}

// TotalVisualLines returns the number of wrapped rows held.
func (b *LineBuffer) TotalVisualLines() int {
	return b.totalVisual
}

// Len returns the number of logical lines.
func (b *LineBuffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of every logical line, oldest first.
func (b *LineBuffer) Lines() []BufferLine {
	return append([]BufferLine(nil), b.lines...)
}

// viewport projects the buffer onto the viewport: whole lines at the top,
// with rows hidden below a scrolled view cut from the bottom.
func (b *LineBuffer) viewport() []schema.LineSnapshot {
	visible := b.VisibleLines(b.height)
	out := make([]schema.LineSnapshot, 0, len(visible))
	for _, line := range visible {
		out = append(out, line.snapshot())
	}
	hide := b.scrollOffset
	for hide > 0 && len(out) > 0 {
		last := &out[len(out)-1]
		if len(last.Wrapped) <= hide {
			hide -= len(last.Wrapped)
			out = out[:len(out)-1]
			continue
		}
		last.Wrapped = last.Wrapped[:len(last.Wrapped)-hide]
		hide = 0
	}
	return out
}

func (b *LineBuffer) clampScroll() {
	b.scrollOffset = clampScroll(b.scrollOffset, b.totalVisual, b.height)
}

func maxScroll(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	if total <= limit {
		return 0
	}
	return total - limit
}

func clampScroll(offset, total, limit int) int {
	max := maxScroll(total, limit)
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
