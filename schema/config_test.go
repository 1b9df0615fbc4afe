package schema

import (
	"errors"
	"testing"
)

func TestNormalizeShellConfigDefaults(t *testing.T) {
	cfg, err := NormalizeShellConfig(ShellConfig{})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.MaxLines != DefaultBufferMaxLines || cfg.HistorySize != DefaultHistorySize {
		t.Fatalf("expected default limits, got %+v", cfg)
	}
	if cfg.Home != "/home/objz" || cfg.User != "anonym" || cfg.Host != "objz" {
		t.Fatalf("unexpected identity: %+v", cfg)
	}
}

func TestNormalizeShellConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  ShellConfig
		want error
	}{
		{name: "negative width", cfg: ShellConfig{Width: -1}, want: ErrInvalidDimensions},
		{name: "negative height", cfg: ShellConfig{Height: -3}, want: ErrInvalidDimensions},
		{name: "relative home", cfg: ShellConfig{Home: "home/objz"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeShellConfig(tc.cfg)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalizeThemeName(t *testing.T) {
	if name, ok := NormalizeThemeName(" Tokyo "); !ok || name != "tokyo-midnight" {
		t.Fatalf("expected tokyo-midnight, got %q %v", name, ok)
	}
	if _, ok := NormalizeThemeName("solarized"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestAvailableThemesAreCanonical(t *testing.T) {
	themes := AvailableThemes()
	want := []ThemeName{"gruvbox", "matrix", "outrun", "tokyo-midnight"}
	if len(themes) != len(want) {
		t.Fatalf("expected %v, got %v", want, themes)
	}
	for i := range want {
		if themes[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, themes)
		}
		if name, ok := NormalizeThemeName(string(themes[i])); !ok || name != themes[i] {
			t.Fatalf("expected %s to normalize to itself", themes[i])
		}
	}
}
