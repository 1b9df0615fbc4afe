package schema

// SessionID identifies a terminal session on a transport.
type SessionID string

// ThemeName identifies a UI theme.
type ThemeName string

// LineType classifies a buffer line for renderers.
type LineType string

const (
	LineNormal  LineType = "normal"
	LineCommand LineType = "command"
	LineOutput  LineType = "output"
	LineBoot    LineType = "boot"
	LineTyping  LineType = "typing"
	LinePrompt  LineType = "prompt"
	LineError   LineType = "error"
	LineSystem  LineType = "system"
)

// Color tags are semantic. Renderers map them to concrete colors.
const (
	ColorNone    = ""
	ColorCyan    = "cyan"
	ColorGreen   = "green"
	ColorYellow  = "yellow"
	ColorWhite   = "white"
	ColorError   = "error"
	ColorWarning = "warning"
	ColorSuccess = "success"
)

// InputMode is the state of the input line.
type InputMode string

const (
	// InputNormal accepts keystrokes.
	InputNormal InputMode = "normal"
	// InputProcessing is set while a command is dispatched.
	InputProcessing InputMode = "processing"
	// InputDisabled ignores all keys; used by non-interruptible animations.
	InputDisabled InputMode = "disabled"
)

// Signal is the out-of-band control value of a command result.
type Signal string

const (
	SignalNone             Signal = ""
	SignalClearScreen      Signal = "clear_screen"
	SignalSystemPanic      Signal = "system_panic"
	SignalDirectoryChanged Signal = "directory_changed"
	SignalExit             Signal = "exit"
)
