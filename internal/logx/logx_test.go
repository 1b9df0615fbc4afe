package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"pkt.systems/pslog"
)

func newCaptureLogger(c *logCapture) pslog.Logger {
	return pslog.NewWithOptions(c, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
}

func TestWithSessionTransportAddsFields(t *testing.T) {
	capture := &logCapture{}
	ctx := pslog.ContextWithLogger(context.Background(), newCaptureLogger(capture))
	log := WithSessionTransport(ctx, "abc123", "ssh")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["session"] != "abc123" {
		t.Fatalf("expected session field, got %+v", entry)
	}
	if entry["transport"] != "ssh" {
		t.Fatalf("expected transport field, got %+v", entry)
	}
}

func TestWithSessionSkipsDuplicateFields(t *testing.T) {
	capture := &logCapture{}
	base := newCaptureLogger(capture)
	log := WithSessionTransport(pslog.ContextWithLogger(context.Background(), base), "abc123", "http")
	ctx := ContextWithSessionLogger(context.Background(), log, "abc123", "http")

	WithSessionTransport(ctx, "abc123", "http").Info("again")
	line := strings.TrimSpace(capture.buf.String())
	if strings.Count(line, `"session"`) != 1 || strings.Count(line, `"transport"`) != 1 {
		t.Fatalf("expected single session/transport fields, got %s", line)
	}
}

func TestWithRemoteAddsField(t *testing.T) {
	capture := &logCapture{}
	WithRemote(newCaptureLogger(capture), "10.0.0.1:2222").Info("hello")
	entry := capture.firstEntry(t)
	if entry["remote"] != "10.0.0.1:2222" {
		t.Fatalf("expected remote field, got %+v", entry)
	}
}

func TestCopyContextFields(t *testing.T) {
	src := ContextWithSession(context.Background(), "s1")
	src = ContextWithTransport(src, "local")
	dst := CopyContextFields(context.Background(), src)
	if dst.Value(sessionKey) != src.Value(sessionKey) || dst.Value(transportKey) != "local" {
		t.Fatalf("expected markers copied")
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
