package core

import (
	"context"

	"pkt.systems/termfolio/schema"
)

// Renderer paints a view snapshot. Implementations must not block for long;
// they are called after every state change.
type Renderer interface {
	Render(view schema.ViewSnapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(view schema.ViewSnapshot)

// Render calls f(view).
func (f RendererFunc) Render(view schema.ViewSnapshot) {
	f(view)
}

// Result is the outcome of dispatching one command line.
type Result struct {
	Output string
	Signal schema.Signal
}

// Dispatcher interprets a trimmed command line against the session.
type Dispatcher interface {
	Dispatch(ctx context.Context, input string, session *SessionState) Result
}

// CompletionKind tags a CompletionResult.
type CompletionKind int

const (
	CompletionNone CompletionKind = iota
	CompletionSingle
	CompletionMultiple
)

// CompletionResult holds replacement candidates for the trailing token.
type CompletionResult struct {
	Kind       CompletionKind
	Candidates []string
}

// Completer proposes completions for the input given the session cwd.
type Completer interface {
	Complete(input, cwd string) CompletionResult
}
