package core

import (
	"context"
	"time"

	"pkt.systems/pslog"
)

// TerminalDeps captures collaborators for a terminal session.
type TerminalDeps struct {
	Dispatcher Dispatcher
	Completer  Completer
	Renderer   Renderer
	Logger     pslog.Logger
	// Sleep waits between animation steps; nil uses a timer bound to ctx.
	Sleep func(ctx context.Context, d time.Duration) error
	// Speed scales animation delays; 0 makes sequences instant.
	Speed float64
}
