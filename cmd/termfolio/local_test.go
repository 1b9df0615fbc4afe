package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestWatchSizeReportsChanges(t *testing.T) {
	sizes := [][2]int{{80, 24}, {80, 24}, {100, 30}, {100, 30}, {90, 20}}
	var mu sync.Mutex
	calls := 0
	size := func() (int, int, error) {
		mu.Lock()
		defer mu.Unlock()
		s := sizes[len(sizes)-1]
		if calls < len(sizes) {
			s = sizes[calls]
		}
		calls++
		return s[0], s[1], nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := watchSize(ctx, size, 80, 24, time.Millisecond)

	for _, want := range [][2]int{{100, 30}, {90, 20}} {
		select {
		case win := <-ch:
			if win.Width != want[0] || win.Height != want[1] {
				t.Fatalf("expected %dx%d, got %dx%d", want[0], want[1], win.Width, win.Height)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected window change %v", want)
		}
	}
	cancel()
	for range ch {
	}
}

func TestLocalLogger(t *testing.T) {
	logger, closeFn, err := localLogger("")
	if err != nil || logger == nil {
		t.Fatalf("expected discard logger, got %v", err)
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "termfolio.log")
	logger, closeFn, err = localLogger(path)
	if err != nil {
		t.Fatalf("file logger: %v", err)
	}
	logger.Info("local test entry", "key", "value")
	closeFn()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "local test entry") {
		t.Fatalf("expected log entry, got %q", data)
	}
}

func TestLocalRejectsUnknownTheme(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := execute(t, "local", "-c", cfg, "--theme", "solarized"); err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Fatalf("expected unknown theme error, got %v", err)
	}
}
