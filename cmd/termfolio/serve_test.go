package main

import (
	"testing"

	"pkt.systems/termfolio/internal/appconfig"
)

func TestServeOptions(t *testing.T) {
	cases := []struct {
		httpOnly, sshOnly bool
		want              int
	}{
		{want: 2},
		{httpOnly: true, want: 1},
		{sshOnly: true, want: 1},
	}
	for _, tc := range cases {
		if got := len(serveOptions(tc.httpOnly, tc.sshOnly)); got != tc.want {
			t.Fatalf("http-only=%v ssh-only=%v: expected %d options, got %d", tc.httpOnly, tc.sshOnly, tc.want, got)
		}
	}
}

func TestServeRejectsExclusiveFlags(t *testing.T) {
	if _, err := execute(t, "serve", "--no-banner", "--http-only", "--ssh-only"); err == nil {
		t.Fatalf("expected error for --http-only with --ssh-only")
	}
}

func TestToServerConfig(t *testing.T) {
	cfg, err := appconfig.DefaultConfig()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	cfg.Boot.Speed = 0.5
	cfg.Logging.DisableAuditTrails = true
	cfg.HTTP.BasePath = "/shell"
	cfg.SSH.Theme = "gruvbox"

	got := toServerConfig(cfg)
	if got.BootSpeed != 0.5 || !got.Shell.DisableAuditLogging {
		t.Fatalf("unexpected shell settings %+v speed %v", got.Shell, got.BootSpeed)
	}
	if got.HTTP.Addr != ":27580" || got.HTTP.BasePath != "/shell" || !got.HTTP.Boot {
		t.Fatalf("unexpected http config %+v", got.HTTP)
	}
	if got.SSH.Addr != ":27522" || got.SSH.Theme != "gruvbox" || !got.SSH.Boot {
		t.Fatalf("unexpected ssh config %+v", got.SSH)
	}
}
