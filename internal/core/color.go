package core

// Color is a foreground color for a screen cell. Values are lipgloss color
// specs: ANSI codes ("1".."255") or hex strings ("#ffcc00").
type Color string

// Palette colors used by HUD and overlays.
const (
	ColorDefault Color = ""
	ColorRed     Color = "9"
	ColorGreen   Color = "10"
	ColorYellow  Color = "11"
	ColorBlue    Color = "12"
	ColorCyan    Color = "14"
	ColorWhite   Color = "15"
	ColorOrange  Color = "208"
	ColorGray    Color = "245"
	ColorWater   Color = "31"
)
