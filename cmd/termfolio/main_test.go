package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestArgv0Alias(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{name: "login-shell", base: "termfolio-sh", want: "local"},
		{name: "login-dash", base: "-termfolio-sh", want: "local"},
		{name: "termfolio", base: "termfolio", want: ""},
	}
	for _, tc := range tests {
		if got := argv0Alias(tc.base); got != tc.want {
			t.Fatalf("%s: argv0Alias(%q) = %q, want %q", tc.name, tc.base, got, tc.want)
		}
	}
}

func TestApplyArgv0Alias(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: nil, want: nil},
		{name: "no-alias", args: []string{"termfolio", "serve"}, want: []string{"termfolio", "serve"}},
		{name: "login-shell", args: []string{"/usr/bin/termfolio-sh", "--no-boot"}, want: []string{"/usr/bin/termfolio-sh", "local", "--no-boot"}},
	}
	for _, tc := range tests {
		got := applyArgv0Alias(tc.args)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: applyArgv0Alias length = %d, want %d", tc.name, len(got), len(tc.want))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: applyArgv0Alias[%d] = %q, want %q", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestRootHasCommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"serve", "local", "config", "version"} {
		if !names[want] {
			t.Fatalf("expected root command to include %s", want)
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "pkt.systems/termfolio ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
