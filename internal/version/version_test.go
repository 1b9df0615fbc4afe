package version

import (
	"runtime/debug"
	"testing"
	"time"
)

func TestCurrentPrefersBuildVersion(t *testing.T) {
	old := buildVersion
	buildVersion = "v1.2.3"
	t.Cleanup(func() { buildVersion = old })

	if got := Current(); got != "v1.2.3" {
		t.Fatalf("expected build version, got %q", got)
	}
}

func TestFromBuildInfoPseudoVersion(t *testing.T) {
	ts := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.org/fork", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "1234567890abcdef"},
			{Key: "vcs.time", Value: ts.Format(time.RFC3339)},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	got := fromBuildInfo(info, "")
	if got.Version != "v0.0.0-20250102030405-1234567890ab" {
		t.Fatalf("unexpected pseudo version %q", got.Version)
	}
	if got.Module != "example.org/fork" || !got.Dirty {
		t.Fatalf("unexpected info %+v", got)
	}
	if s := got.String(); s != "example.org/fork v0.0.0-20250102030405-1234567890ab (1234567890ab, dirty)" {
		t.Fatalf("unexpected string %q", s)
	}
}

func TestFromBuildInfoFallbacks(t *testing.T) {
	got := fromBuildInfo(nil, "")
	if got.Module != defaultModule || got.Version != "v0.0.0-unknown" {
		t.Fatalf("unexpected fallback %+v", got)
	}
	if s := got.String(); s != defaultModule+" v0.0.0-unknown" {
		t.Fatalf("unexpected string %q", s)
	}
	tagged := fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v2.0.0+dirty"}}, "")
	if tagged.Version != "v2.0.0" {
		t.Fatalf("expected dirty suffix trimmed, got %q", tagged.Version)
	}
}
