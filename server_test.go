package termfolio

import (
	"context"
	"errors"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pkt.systems/termfolio/httpapi"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

func TestNewRequiresService(t *testing.T) {
	if _, err := New(ServerConfig{}); err == nil {
		t.Fatalf("expected error without services")
	}
}

func TestNewRejectsInvalidShell(t *testing.T) {
	if _, err := New(ServerConfig{Shell: schema.ShellConfig{Width: -1}}, WithHTTP()); err == nil {
		t.Fatalf("expected invalid dimensions error")
	}
}

func TestServerStopCancelsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &compositeServer{
		ctx:     ctx,
		cancel:  cancel,
		started: true,
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := server.Stop(stopCtx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	select {
	case <-ctx.Done():
	default:
		t.Fatalf("expected server context to be canceled")
	}
}

func TestServerStopBeforeStart(t *testing.T) {
	server := &compositeServer{}
	if err := server.Stop(context.Background()); err != nil {
		t.Fatalf("expected nil stop before start, got %v", err)
	}
	if err := server.Wait(); err == nil {
		t.Fatalf("expected wait error before start")
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestServerServesHTTPAndSSH(t *testing.T) {
	httpAddr := freeAddr(t)
	srv, err := New(ServerConfig{
		HTTP: httpapi.Config{Addr: httpAddr},
		SSH:  sshserver.Config{Addr: freeAddr(t), HostKeyPath: filepath.Join(t.TempDir(), "host_key")},
	}, WithHTTP(), WithSSH())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := srv.Start(ctx); err == nil {
		t.Fatalf("expected second start to fail")
	}

	var resp *http.Response
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err = http.Post("http://"+httpAddr+"/api/session", "application/json", strings.NewReader(`{"width":80,"height":24}`))
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("http server not reachable: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from session endpoint, got %d", resp.StatusCode)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := srv.Stop(stopCtx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := srv.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestServerWaitReportsServiceFailure(t *testing.T) {
	stopped := make(chan struct{})
	server := &compositeServer{services: []service{
		{name: "broken", run: func(context.Context) error { return errors.New("bind failed") }},
		{name: "steady", run: func(ctx context.Context) error {
			<-ctx.Done()
			close(stopped)
			return nil
		}},
	}}
	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	err := server.Wait()
	if err == nil || !strings.Contains(err.Error(), "broken: bind failed") {
		t.Fatalf("expected service failure, got %v", err)
	}
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected remaining services to stop")
	}
}
