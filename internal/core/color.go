package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

var colorNames = map[string]Color{
	"":              ColorDefault,
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"white":         ColorWhite,
	"bright_red":    ColorBrightRed,
	"bright_yellow": ColorBrightYellow,
	"bright_white":  ColorBrightWhite,
	"gray":          ColorGray,
	"grey":          ColorGray,
}

// ParseColor maps a config color name to a Color.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
