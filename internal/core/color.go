package core

import "fmt"

// Color represents a terminal color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorGray
	ColorLightGray
	ColorSilver
	ColorDarkGreen
	ColorDarkRed
)

var colorNames = map[string]Color{
	"default":      ColorDefault,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"white":        ColorWhite,
	"bright_green": ColorBrightGreen,
	"gray":         ColorGray,
	"light_gray":   ColorLightGray,
	"silver":       ColorSilver,
	"dark_green":   ColorDarkGreen,
	"dark_red":     ColorDarkRed,
}

// ParseColor resolves a color name as used in config files.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}
