package schema

import (
	"slices"
	"strings"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme ThemeName = "matrix"

// themeAliases maps accepted spellings to canonical names. The alias names
// follow the labels printed by neofetch and the web page.
var themeAliases = map[string]ThemeName{
	"matrix":          "matrix",
	"matrix-dark":     "matrix",
	"outrun":          "outrun",
	"outrun-electric": "outrun",
	"gruvbox":         "gruvbox",
	"tokyo":           "tokyo-midnight",
	"tokyo-midnight":  "tokyo-midnight",
}

// AvailableThemes returns the canonical theme names, sorted.
func AvailableThemes() []ThemeName {
	seen := map[ThemeName]bool{}
	out := make([]ThemeName, 0, len(themeAliases))
	for _, name := range themeAliases {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// NormalizeThemeName maps name to its canonical form. Case, surrounding space
// and underscores are ignored.
func NormalizeThemeName(name string) (ThemeName, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	canonical, ok := themeAliases[key]
	return canonical, ok
}
