package tui

import (
	"strconv"

	"pkt.systems/termfolio/schema"
)

type rgb struct {
	r int
	g int
	b int
}

type tuiTheme struct {
	Name     schema.ThemeName
	OutputFG rgb
	BootFG   rgb
	PromptFG rgb
	CyanFG   rgb
	GreenFG  rgb
	YellowFG rgb
	WhiteFG  rgb
	ErrorFG  rgb
	WarnFG   rgb
	OkFG     rgb
	MetaFG   rgb
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
)

var tuiThemes = map[schema.ThemeName]tuiTheme{
	"matrix": {
		Name:     "matrix",
		OutputFG: rgb{r: 0, g: 255, b: 65},
		BootFG:   rgb{r: 0, g: 143, b: 17},
		PromptFG: rgb{r: 0, g: 255, b: 255},
		CyanFG:   rgb{r: 0, g: 255, b: 255},
		GreenFG:  rgb{r: 0, g: 255, b: 65},
		YellowFG: rgb{r: 240, g: 225, b: 48},
		WhiteFG:  rgb{r: 230, g: 230, b: 230},
		ErrorFG:  rgb{r: 255, g: 85, b: 85},
		WarnFG:   rgb{r: 255, g: 184, b: 108},
		OkFG:     rgb{r: 80, g: 250, b: 123},
		MetaFG:   rgb{r: 0, g: 110, b: 20},
	},
	"outrun": {
		Name:     "outrun",
		OutputFG: rgb{r: 240, g: 241, b: 255},
		BootFG:   rgb{r: 154, g: 163, b: 178},
		PromptFG: rgb{r: 0, g: 229, b: 255},
		CyanFG:   rgb{r: 112, g: 214, b: 255},
		GreenFG:  rgb{r: 114, g: 241, b: 184},
		YellowFG: rgb{r: 254, g: 222, b: 93},
		WhiteFG:  rgb{r: 255, g: 255, b: 255},
		ErrorFG:  rgb{r: 255, g: 107, b: 107},
		WarnFG:   rgb{r: 255, g: 91, b: 189},
		OkFG:     rgb{r: 114, g: 241, b: 184},
		MetaFG:   rgb{r: 110, g: 136, b: 255},
	},
	"gruvbox": {
		Name:     "gruvbox",
		OutputFG: rgb{r: 235, g: 219, b: 178},
		BootFG:   rgb{r: 146, g: 131, b: 116},
		PromptFG: rgb{r: 250, g: 189, b: 47},
		CyanFG:   rgb{r: 131, g: 165, b: 152},
		GreenFG:  rgb{r: 184, g: 187, b: 38},
		YellowFG: rgb{r: 250, g: 189, b: 47},
		WhiteFG:  rgb{r: 251, g: 241, b: 199},
		ErrorFG:  rgb{r: 251, g: 73, b: 52},
		WarnFG:   rgb{r: 254, g: 128, b: 25},
		OkFG:     rgb{r: 184, g: 187, b: 38},
		MetaFG:   rgb{r: 124, g: 111, b: 100},
	},
	"tokyo-midnight": {
		Name:     "tokyo-midnight",
		OutputFG: rgb{r: 192, g: 202, b: 245},
		BootFG:   rgb{r: 127, g: 133, b: 163},
		PromptFG: rgb{r: 122, g: 162, b: 247},
		CyanFG:   rgb{r: 125, g: 207, b: 255},
		GreenFG:  rgb{r: 158, g: 206, b: 106},
		YellowFG: rgb{r: 224, g: 175, b: 104},
		WhiteFG:  rgb{r: 220, g: 225, b: 252},
		ErrorFG:  rgb{r: 247, g: 118, b: 142},
		WarnFG:   rgb{r: 255, g: 158, b: 100},
		OkFG:     rgb{r: 158, g: 206, b: 106},
		MetaFG:   rgb{r: 86, g: 95, b: 137},
	},
}

func themeForName(name schema.ThemeName) tuiTheme {
	if normalized, ok := schema.NormalizeThemeName(string(name)); ok {
		name = normalized
	}
	if theme, ok := tuiThemes[name]; ok {
		return theme
	}
	return tuiThemes[schema.DefaultTheme]
}

// colorFor maps a semantic color tag, falling back to the line type.
func (t tuiTheme) colorFor(color string, lineType schema.LineType) rgb {
	switch color {
	case schema.ColorCyan:
		return t.CyanFG
	case schema.ColorGreen:
		return t.GreenFG
	case schema.ColorYellow:
		return t.YellowFG
	case schema.ColorWhite:
		return t.WhiteFG
	case schema.ColorError:
		return t.ErrorFG
	case schema.ColorWarning:
		return t.WarnFG
	case schema.ColorSuccess:
		return t.OkFG
	}
	switch lineType {
	case schema.LineBoot:
		return t.BootFG
	case schema.LineCommand, schema.LinePrompt, schema.LineTyping:
		return t.PromptFG
	case schema.LineError:
		return t.ErrorFG
	case schema.LineSystem:
		return t.YellowFG
	default:
		return t.OutputFG
	}
}

func ansiFgRGB(c rgb) string {
	return "\x1b[38;2;" + strconv.Itoa(c.r) + ";" + strconv.Itoa(c.g) + ";" + strconv.Itoa(c.b) + "m"
}
