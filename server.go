package termfolio

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/httpapi"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

// Server composes the HTTP and SSH front ends.
type Server interface {
	Start(ctx context.Context) error
	Wait() error
	Stop(ctx context.Context) error
}

// ServerConfig configures the compositor.
type ServerConfig struct {
	Shell schema.ShellConfig
	// BootSpeed scales animation delays; 0 plays them instantly.
	BootSpeed float64
	HTTP      httpapi.Config
	SSH       sshserver.Config
}

// ServerOption toggles compositor components.
type ServerOption func(*serverOptions)

type serverOptions struct {
	enableHTTP bool
	enableSSH  bool
}

// WithHTTP enables the browser terminal.
func WithHTTP() ServerOption {
	return func(o *serverOptions) { o.enableHTTP = true }
}

// WithSSH enables the SSH terminal.
func WithSSH() ServerOption {
	return func(o *serverOptions) { o.enableSSH = true }
}

// service is one listener owned by the compositor.
type service struct {
	name string
	addr string
	run  func(ctx context.Context) error
}

// New constructs a composable termfolio server.
func New(cfg ServerConfig, opts ...ServerOption) (Server, error) {
	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}
	if !options.enableHTTP && !options.enableSSH {
		return nil, errors.New("no services enabled")
	}
	factory, err := NewTerminalFactory(cfg.Shell, cfg.BootSpeed)
	if err != nil {
		return nil, err
	}

	srv := &compositeServer{bootSpeed: cfg.BootSpeed}
	if options.enableHTTP {
		web := httpapi.NewServer(cfg.HTTP, httpapi.TerminalFactory(factory), httpapi.NewHub(cfg.HTTP.HubHistory))
		srv.services = append(srv.services, service{
			name: "http",
			addr: cfg.HTTP.Addr,
			run: func(ctx context.Context) error {
				web.SetBaseContext(ctx)
				return httpapi.ListenAndServe(ctx, cfg.HTTP.Addr, web.Handler())
			},
		})
	}
	if options.enableSSH {
		shell := sshserver.NewServer(cfg.SSH, sshserver.TerminalFactory(factory))
		srv.services = append(srv.services, service{
			name: "ssh",
			addr: cfg.SSH.Addr,
			run:  shell.ListenAndServe,
		})
	}
	return srv, nil
}

type compositeServer struct {
	services  []service
	bootSpeed float64

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	failed  chan error
	started bool
}

func (s *compositeServer) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		pslog.Ctx(ctx).Warn("server start rejected", "reason", "already started")
		return errors.New("server already started")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.failed = make(chan error, len(s.services))
	s.started = true

	log := pslog.Ctx(s.ctx)
	log.Info("server start", "services", len(s.services), "boot_speed", s.bootSpeed)
	for _, svc := range s.services {
		log.Info("service listening", "service", svc.name, "addr", svc.addr)
		go func(svc service) {
			if err := svc.run(s.ctx); err != nil {
				log.Error("service failed", "service", svc.name, "err", err)
				s.failed <- fmt.Errorf("%s: %w", svc.name, err)
			}
		}(svc)
	}
	return nil
}

// snapshot returns the run state under the lock.
func (s *compositeServer) snapshot() (context.Context, context.CancelFunc, chan error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx, s.cancel, s.failed, s.started
}

// Wait blocks until the server is stopped or a service fails. A failing
// service stops the rest.
func (s *compositeServer) Wait() error {
	ctx, _, failed, started := s.snapshot()
	if !started {
		return errors.New("server not started")
	}
	select {
	case <-ctx.Done():
		return nil
	case err := <-failed:
		_ = s.Stop(context.Background())
		return err
	}
}

func (s *compositeServer) Stop(ctx context.Context) error {
	serverCtx, cancel, _, started := s.snapshot()
	if !started {
		return nil
	}
	log := pslog.Ctx(serverCtx)
	log.Info("server stop requested")
	if cancel != nil {
		cancel()
	}
	if ctx == nil {
		return nil
	}
	select {
	case <-serverCtx.Done():
		log.Info("server stopped")
		return nil
	case <-ctx.Done():
		log.Warn("server stop timed out", "err", ctx.Err())
		return ctx.Err()
	}
}
