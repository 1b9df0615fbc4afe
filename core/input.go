package core

import (
	"slices"

	"pkt.systems/termfolio/schema"
)

// InputState is the line being edited plus its mode.
// The cursor counts runes and always lies within [0, len(text)].
type InputState struct {
	text   []rune
	cursor int
	mode   schema.InputMode
}

func newInputState() *InputState {
	return &InputState{mode: schema.InputNormal}
}

func (in *InputState) String() string         { return string(in.text) }
func (in *InputState) Len() int               { return len(in.text) }
func (in *InputState) Cursor() int            { return in.cursor }
func (in *InputState) Mode() schema.InputMode { return in.mode }

func (in *InputState) SetMode(mode schema.InputMode) {
	in.mode = mode
}

func (in *InputState) Clear() {
	in.text = nil
	in.cursor = 0
}

// SetString replaces the text and moves the cursor to the end.
func (in *InputState) SetString(value string) {
	in.Set(value, len(value))
}

// Set replaces the text and clamps cursor into range.
func (in *InputState) Set(value string, cursor int) {
	in.text = []rune(value)
	in.cursor = min(max(cursor, 0), len(in.text))
}

func (in *InputState) InsertRune(r rune) {
	in.text = slices.Insert(in.text, in.cursor, r)
	in.cursor++
}

func (in *InputState) Backspace() {
	if in.cursor > 0 {
		in.text = slices.Delete(in.text, in.cursor-1, in.cursor)
		in.cursor--
	}
}

func (in *InputState) Delete() {
	if in.cursor < len(in.text) {
		in.text = slices.Delete(in.text, in.cursor, in.cursor+1)
	}
}

func (in *InputState) MoveLeft()  { in.cursor = max(in.cursor-1, 0) }
func (in *InputState) MoveRight() { in.cursor = min(in.cursor+1, len(in.text)) }
func (in *InputState) MoveStart() { in.cursor = 0 }
func (in *InputState) MoveEnd()   { in.cursor = len(in.text) }

func (in *InputState) MoveWordLeft()  { in.cursor = in.prevWord() }
func (in *InputState) MoveWordRight() { in.cursor = in.nextWord() }

// DeleteWordBackward removes the word before the cursor and the blanks
// between it and the cursor (Ctrl-W).
func (in *InputState) DeleteWordBackward() {
	start := in.prevWord()
	in.text = slices.Delete(in.text, start, in.cursor)
	in.cursor = start
}

// KillLineStart drops everything left of the cursor (Ctrl-U).
func (in *InputState) KillLineStart() {
	in.text = slices.Delete(in.text, 0, in.cursor)
	in.cursor = 0
}

// KillLineEnd drops everything right of the cursor (Ctrl-K).
func (in *InputState) KillLineEnd() {
	in.text = in.text[:in.cursor]
}

// prevWord is the start of the word at or before the cursor.
func (in *InputState) prevWord() int {
	i := in.cursor
	for i > 0 && isBlank(in.text[i-1]) {
		i--
	}
	for i > 0 && !isBlank(in.text[i-1]) {
		i--
	}
	return i
}

// nextWord is the end of the word at or after the cursor.
func (in *InputState) nextWord() int {
	i := in.cursor
	for i < len(in.text) && isBlank(in.text[i]) {
		i++
	}
	for i < len(in.text) && !isBlank(in.text[i]) {
		i++
	}
	return i
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
