// Package version reports the build identity of the termfolio binary.
package version

import (
	"runtime/debug"
	"strings"
	"time"
)

const defaultModule = "pkt.systems/termfolio"

// buildVersion is set via -ldflags "-X pkt.systems/termfolio/internal/version.buildVersion=...".
var buildVersion = ""

// Info describes the running build.
type Info struct {
	Module   string
	Version  string
	Revision string
	Time     time.Time
	Dirty    bool
}

// String renders the info the way the version command prints it.
func (i Info) String() string {
	out := i.Module + " " + i.Version
	if i.Revision != "" {
		out += " (" + shortRevision(i.Revision)
		if i.Dirty {
			out += ", dirty"
		}
		out += ")"
	}
	return out
}

// Read collects build information from the ldflags override and the
// embedded build info.
func Read() Info {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(info, buildVersion)
}

// Current returns the version string without a dirty suffix.
func Current() string {
	return Read().Version
}

func fromBuildInfo(info *debug.BuildInfo, override string) Info {
	out := Info{Module: defaultModule, Version: "v0.0.0-unknown"}
	if info != nil {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			out.Module = path
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				out.Revision = setting.Value
			case "vcs.time":
				if parsed, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					out.Time = parsed.UTC()
				}
			case "vcs.modified":
				out.Dirty = setting.Value == "true"
			}
		}
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			out.Version = v
		} else if out.Revision != "" && !out.Time.IsZero() {
			out.Version = "v0.0.0-" + out.Time.Format("20060102150405") + "-" + shortRevision(out.Revision)
		}
	}
	if v := strings.TrimSpace(override); v != "" {
		out.Version = v
	}
	out.Version = strings.TrimSuffix(out.Version, "+dirty")
	return out
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
