package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
	ColorNavy
	ColorMaroon
	ColorTeal
	ColorGray
	ColorDarkGray
)

// NumberColor returns the classic color for an adjacency count.
// 1 blue, 2 green, 3 red, 4 navy, 5 maroon, 6 teal, 7 white, 8 gray.
func NumberColor(n int) Color {
	switch n {
	case 1:
		return ColorBrightBlue
	case 2:
		return ColorGreen
	case 3:
		return ColorBrightRed
	case 4:
		return ColorNavy
	case 5:
		return ColorMaroon
	case 6:
		return ColorTeal
	case 7:
		return ColorBrightWhite
	case 8:
		return ColorGray
	default:
		return ColorDefault
	}
}
