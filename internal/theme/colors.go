package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Basic ANSI colors
const (
	ColorBlue   Color = "4"
	ColorGreen  Color = "2"
	ColorRed    Color = "1"
	ColorYellow Color = "3"
)

// Bright ANSI colors
const (
	ColorBrightBlue   Color = "12"
	ColorBrightGreen  Color = "10"
	ColorBrightRed    Color = "9"
	ColorBrightYellow Color = "11"
)
