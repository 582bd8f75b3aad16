package core

// Color is a palette entry shared by every frontend.
// The terminal maps it to ANSI codes, the window to RGBA.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGray
)
