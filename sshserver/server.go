package sshserver

import (
	"context"
	"errors"
	"io"
	"net"

	gliderssh "github.com/gliderlabs/ssh"
	"golang.org/x/crypto/ssh"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/tui"
)

// TerminalFactory builds the shell for a new SSH session.
type TerminalFactory func(ctx context.Context, id schema.SessionID, renderer core.Renderer) (*core.Terminal, error)

// Server exposes the portfolio shell over SSH. Any user name is accepted
// without authentication.
type Server struct {
	Addr        string
	HostKeyPath string
	Listener    net.Listener
	Theme       schema.ThemeName
	Boot        bool
	Factory     TerminalFactory
	logger      pslog.Logger
}

// NewServer builds an SSH server from cfg.
func NewServer(cfg Config, factory TerminalFactory) *Server {
	return &Server{
		Addr:        cfg.Addr,
		HostKeyPath: cfg.HostKeyPath,
		Theme:       cfg.Theme,
		Boot:        cfg.Boot,
		Factory:     factory,
	}
}

// ListenAndServe starts the SSH server and shuts down on context cancellation.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.logger == nil {
		s.logger = pslog.Ctx(ctx)
	}
	if s.Factory == nil {
		return errors.New("terminal factory is required for SSH")
	}
	if s.Theme == "" {
		s.Theme = schema.DefaultTheme
	}

	signer, err := EnsureHostKey(s.HostKeyPath)
	if err != nil {
		return err
	}
	s.logger.Info("ssh host key ready", "path", s.HostKeyPath, "fingerprint", ssh.FingerprintSHA256(signer.PublicKey()))

	server := &gliderssh.Server{
		Addr:    s.Addr,
		Handler: s.handleSession,
	}
	server.AddHostKey(signer)

	errCh := make(chan error, 1)
	go func() {
		if s.Listener != nil {
			errCh <- server.Serve(s.Listener)
			return
		}
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		_ = server.Close()
		return nil
	case err := <-errCh:
		if errors.Is(err, gliderssh.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func remoteAddr(sess gliderssh.Session) string {
	if sess == nil || sess.RemoteAddr() == nil {
		return ""
	}
	return sess.RemoteAddr().String()
}

func (s *Server) handleSession(sess gliderssh.Session) {
	log := s.logger
	if log == nil {
		log = pslog.Ctx(sess.Context())
	}
	remote := remoteAddr(sess)
	id := core.NewSessionID()
	log = logx.WithRemote(log.With("session", id, "transport", "ssh", "user", sess.User()), remote)
	if sshSession := sess.Context().SessionID(); sshSession != "" {
		log = log.With("ssh_session", sshSession)
	}

	pty, winCh, ok := sess.Pty()
	if !ok {
		log.Info("ssh session rejected", "reason", "pty required")
		_, _ = io.WriteString(sess, "pty required\n")
		_ = sess.Exit(1)
		return
	}

	ctx, cancel := context.WithCancel(logx.ContextWithSessionLogger(sess.Context(), log, id, "ssh"))
	defer cancel()

	ui := tui.NewSession(sess, sess, s.Theme)
	term, err := s.Factory(ctx, id, ui.Renderer())
	if err != nil {
		log.Error("ssh session failed", "err", err)
		_, _ = io.WriteString(sess, "session unavailable\n")
		_ = sess.Exit(1)
		return
	}
	defer term.Close()
	if err := term.Resize(pty.Window.Width, pty.Window.Height); err != nil {
		log.Debug("ssh initial size ignored", "width", pty.Window.Width, "height", pty.Window.Height, "err", err)
	}

	log.Info("ssh session opened", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)
	if err := ui.Run(ctx, term, forwardWindows(ctx, winCh), s.Boot); err != nil {
		log.Warn("ssh session error", "err", err)
	}
	log.Info("ssh session closed", "term", pty.Term)
	_ = sess.Exit(0)
}

// forwardWindows converts pty window changes until ctx ends.
func forwardWindows(ctx context.Context, in <-chan gliderssh.Window) <-chan tui.Window {
	out := make(chan tui.Window, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case win, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- tui.Window{Width: win.Width, Height: win.Height}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
