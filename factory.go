package termfolio

import (
	"context"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/command"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// TerminalFactory builds one shell session that paints through renderer.
type TerminalFactory func(ctx context.Context, id schema.SessionID, renderer core.Renderer) (*core.Terminal, error)

// NewTerminalFactory returns a factory whose sessions share one command
// handler and filesystem. speed scales boot and panic animations.
func NewTerminalFactory(shell schema.ShellConfig, speed float64) (TerminalFactory, error) {
	normalized, err := schema.NormalizeShellConfig(shell)
	if err != nil {
		return nil, err
	}
	handler := command.NewHandler(command.NewFS(normalized.Home), command.HandlerConfig{
		ShellName:           normalized.ShellName,
		DisableAuditLogging: normalized.DisableAuditLogging,
	})
	completer := command.NewCompleter(handler.FS())
	return func(ctx context.Context, id schema.SessionID, renderer core.Renderer) (*core.Terminal, error) {
		if ctx == nil {
			ctx = context.Background()
		}
		log := logx.WithSession(ctx, id)
		term, err := core.NewTerminal(ctx, normalized, core.TerminalDeps{
			Dispatcher: handler,
			Completer:  completer,
			Renderer:   renderer,
			Logger:     log,
			Speed:      speed,
		})
		if err != nil {
			log.Warn("terminal create failed", "err", err)
			return nil, err
		}
		log.Debug("terminal created", "width", normalized.Width, "height", normalized.Height)
		return term, nil
	}, nil
}
