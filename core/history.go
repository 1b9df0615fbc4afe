package core

import (
	"strings"

	"pkt.systems/termfolio/schema"
)

// CommandHistory keeps submitted commands oldest first. A re-submitted
// command moves to the newest slot instead of being duplicated.
type CommandHistory struct {
	entries []string
	max     int
	// cursor indexes entries during navigation; -1 means no selection.
	cursor int
}

// NewCommandHistory returns a history bounded to max entries.
func NewCommandHistory(max int) *CommandHistory {
	if max <= 0 {
		max = schema.DefaultHistorySize
	}
	return &CommandHistory{max: max, cursor: -1}
}

// Add records cmd and resets navigation. Blank input is ignored.
func (h *CommandHistory) Add(cmd string) bool {
	if h == nil {
		return false
	}
	cmd = strings.TrimSpace(cmd)
	h.cursor = -1
	if cmd == "" {
		return false
	}
	for i, entry := range h.entries {
		if entry == cmd {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = append([]string(nil), h.entries[len(h.entries)-h.max:]...)
	}
	return true
}

// Previous steps toward older entries and clamps at the oldest.
func (h *CommandHistory) Previous() (string, bool) {
	if h == nil || len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor < 0:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps toward newer entries. Moving past the newest clears the
// selection and yields the empty string.
func (h *CommandHistory) Next() (string, bool) {
	if h == nil || h.cursor < 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = -1
	return "", true
}

// Reset clears the navigation cursor.
func (h *CommandHistory) Reset() {
	if h != nil {
		h.cursor = -1
	}
}

// Entries returns a copy of the history, oldest first.
func (h *CommandHistory) Entries() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.entries...)
}

// Len returns the number of stored entries.
func (h *CommandHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}
