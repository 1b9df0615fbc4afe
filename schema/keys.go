package schema

// KeyKind names a decoded keystroke. Values are stable strings so browser
// clients can post them as JSON.
type KeyKind string

const (
	KeyRune      KeyKind = "rune"
	KeyEnter     KeyKind = "enter"
	KeyBackspace KeyKind = "backspace"
	KeyDelete    KeyKind = "delete"
	KeyLeft      KeyKind = "left"
	KeyRight     KeyKind = "right"
	KeyHome      KeyKind = "home"
	KeyEnd       KeyKind = "end"
	KeyUp        KeyKind = "up"
	KeyDown      KeyKind = "down"
	KeyTab       KeyKind = "tab"
	KeyPageUp    KeyKind = "pageup"
	KeyPageDown  KeyKind = "pagedown"
	KeyCtrlA     KeyKind = "ctrl-a"
	KeyCtrlC     KeyKind = "ctrl-c"
	KeyCtrlD     KeyKind = "ctrl-d"
	KeyCtrlE     KeyKind = "ctrl-e"
	KeyCtrlK     KeyKind = "ctrl-k"
	KeyCtrlL     KeyKind = "ctrl-l"
	KeyCtrlU     KeyKind = "ctrl-u"
	KeyCtrlW     KeyKind = "ctrl-w"
	KeyAltB      KeyKind = "alt-b"
	KeyAltF      KeyKind = "alt-f"
)

// Key is one keystroke. Rune is set only for KeyRune.
type Key struct {
	Kind KeyKind `json:"kind"`
	Rune rune    `json:"rune,omitempty"`
}

// RuneKey builds a printable key.
func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}
