package sshserver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureHostKeyCreatesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "ssh_host_key")
	first, err := EnsureHostKey(path)
	if err != nil {
		t.Fatalf("ensure host key: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat host key: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 host key, got %v", info.Mode().Perm())
	}
	second, err := EnsureHostKey(path)
	if err != nil {
		t.Fatalf("reload host key: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Fatalf("expected the same key after reload")
	}
}

func TestEnsureHostKeyRejectsBadInput(t *testing.T) {
	if _, err := EnsureHostKey("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
	path := filepath.Join(t.TempDir(), "garbage")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := EnsureHostKey(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
