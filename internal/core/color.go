package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorSlate
	ColorLime
)

// FadeColor maps a banner alpha in [0, 1] to a color ramp.
// Terminals cannot blend, so alpha becomes brightness; zero means hidden.
func FadeColor(alpha float64) (Color, bool) {
	switch {
	case alpha <= 0:
		return ColorDefault, false
	case alpha > 0.66:
		return ColorBrightWhite, true
	case alpha > 0.33:
		return ColorWhite, true
	case alpha > 0.1:
		return ColorGray, true
	default:
		return ColorDarkGray, true
	}
}
