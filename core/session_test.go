package core

import (
	"testing"

	"pkt.systems/termfolio/schema"
)

func TestSessionPrompt(t *testing.T) {
	cfg, err := schema.NormalizeShellConfig(schema.ShellConfig{})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	s := NewSessionState(cfg)
	cases := []struct {
		cwd  string
		want string
	}{
		{cwd: "/home/objz", want: "anonym@objz:~$ "},
		{cwd: "/home/objz/projects", want: "anonym@objz:~/projects$ "},
		{cwd: "/home/objzz", want: "anonym@objz:/home/objzz$ "},
		{cwd: "/", want: "anonym@objz:/$ "},
	}
	for _, tc := range cases {
		s.Cwd = tc.cwd
		if got := s.Prompt(); got != tc.want {
			t.Fatalf("cwd %s: expected %q, got %q", tc.cwd, tc.want, got)
		}
	}
}
