package tui

import (
	"context"
	"errors"
	"io"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/schema"
)

// Window is a terminal size in columns and rows.
type Window struct {
	Width  int
	Height int
}

// Session paints a core.Terminal as ANSI on out and feeds it keys read from in.
type Session struct {
	in     io.Reader
	out    io.Writer
	screen *screen
	theme  tuiTheme
	logger pslog.Logger

	mu      sync.Mutex
	latest  schema.ViewSnapshot
	have    bool
	frames  chan struct{}
	painted uint64
	drawn   bool
}

// NewSession builds an ANSI session over the given streams.
func NewSession(in io.Reader, out io.Writer, theme schema.ThemeName) *Session {
	return &Session{
		in:     in,
		out:    out,
		screen: newScreen(out),
		theme:  themeForName(theme),
		frames: make(chan struct{}, 1),
	}
}

// Renderer returns the renderer to install on the terminal. Frames are
// coalesced; only the newest one is painted.
func (s *Session) Renderer() core.Renderer {
	return core.RendererFunc(s.push)
}

func (s *Session) push(view schema.ViewSnapshot) {
	s.mu.Lock()
	if !s.have || view.Seq >= s.latest.Seq {
		s.latest = view
		s.have = true
	}
	s.mu.Unlock()
	select {
	case s.frames <- struct{}{}:
	default:
	}
}

// Run drives term until ctx ends, input closes or the shell exits. When boot
// is set the boot sequence plays first.
func (s *Session) Run(ctx context.Context, term *core.Terminal, winCh <-chan Window, boot bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if term == nil {
		return errors.New("missing terminal")
	}
	s.logger = pslog.Ctx(ctx)
	s.screen.EnterAltScreen()
	defer s.screen.ExitAltScreen()

	s.push(term.Snapshot())
	s.paint()
	s.logger.Info("tui session start", "boot", boot)

	keys := make(chan schema.Key, 16)
	go ReadKeys(s.in, keys)
	defer func() {
		// Unblock the reader; it exits once the input stream closes.
		go func() {
			for range keys {
			}
		}()
	}()

	if boot {
		go func() {
			_ = term.Boot()
		}()
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("tui session canceled")
			return nil
		case k, ok := <-keys:
			if !ok {
				s.logger.Debug("tui input closed")
				return nil
			}
			if err := term.HandleKey(ctx, k); err != nil {
				if errors.Is(err, schema.ErrSessionClosed) {
					return nil
				}
				s.logger.Trace("tui key ignored", "kind", k.Kind, "err", err)
			}
		case win, ok := <-winCh:
			if !ok {
				winCh = nil
				break
			}
			if err := term.Resize(win.Width, win.Height); err != nil {
				s.logger.Debug("tui resize ignored", "width", win.Width, "height", win.Height, "err", err)
				break
			}
			s.logger.Debug("tui resize", "width", win.Width, "height", win.Height)
		case <-s.frames:
		}

		if view, ok := s.paint(); ok && view.Closed {
			s.logger.Info("tui session end", "reason", "exit")
			return nil
		}
	}
}

func (s *Session) paint() (schema.ViewSnapshot, bool) {
	s.mu.Lock()
	view, ok := s.latest, s.have
	s.mu.Unlock()
	if !ok {
		return view, false
	}
	if s.drawn && view.Seq == s.painted {
		return view, true
	}
	s.painted, s.drawn = view.Seq, true
	lines, row, col := renderFrame(view, s.theme)
	if err := s.screen.Render(lines, row, col); err != nil {
		if s.logger != nil {
			s.logger.Warn("tui render failed", "err", err)
		}
	}
	return view, true
}
