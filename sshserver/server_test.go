package sshserver

import (
	"bytes"
	"context"
	"io"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/ssh"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/command"
	"pkt.systems/termfolio/schema"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testFactory(ctx context.Context, _ schema.SessionID, renderer core.Renderer) (*core.Terminal, error) {
	h := command.NewHandler(nil, command.HandlerConfig{})
	return core.NewTerminal(ctx, schema.ShellConfig{}, core.TerminalDeps{
		Dispatcher: h,
		Completer:  command.NewCompleter(h.FS()),
		Renderer:   renderer,
	})
}

func startTestServer(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := NewServer(Config{HostKeyPath: filepath.Join(t.TempDir(), "host_key")}, testFactory)
	srv.Listener = ln
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Errorf("server did not stop")
		}
	})
	return ln.Addr().String()
}

func dial(t *testing.T, addr string) *ssh.Client {
	t.Helper()
	client, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            "guest",
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSSHSessionRunsShell(t *testing.T) {
	client := dial(t, startTestServer(t))
	session, err := client.NewSession()
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()

	var out lockedBuffer
	session.Stdout = &out
	stdin, err := session.StdinPipe()
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if err := session.RequestPty("xterm-256color", 24, 80, ssh.TerminalModes{}); err != nil {
		t.Fatalf("pty: %v", err)
	}
	if err := session.Shell(); err != nil {
		t.Fatalf("shell: %v", err)
	}
	if _, err := io.WriteString(stdin, "echo over ssh\r"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := session.WindowChange(30, 100); err != nil {
		t.Fatalf("window change: %v", err)
	}
	if _, err := io.WriteString(stdin, "exit\r"); err != nil {
		t.Fatalf("write: %v", err)
	}

	waitErr := make(chan error, 1)
	go func() { waitErr <- session.Wait() }()
	select {
	case err := <-waitErr:
		if err != nil {
			t.Fatalf("expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not end")
	}
	got := out.String()
	for _, want := range []string{"over ssh", "logout", "anonym@objz:~$"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestSSHSessionRequiresPty(t *testing.T) {
	client := dial(t, startTestServer(t))
	session, err := client.NewSession()
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()
	out, err := session.CombinedOutput("ls")
	if err == nil {
		t.Fatalf("expected non-zero exit without pty")
	}
	if !strings.Contains(string(out), "pty required") {
		t.Fatalf("expected pty message, got %q", out)
	}
}

func TestListenAndServeRequiresFactory(t *testing.T) {
	srv := NewServer(Config{HostKeyPath: filepath.Join(t.TempDir(), "k")}, nil)
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("expected error without factory")
	}
}
