package core

// Color is a foreground colour for a screen cell. The terminal front end
// maps each value to an ANSI 256-colour code.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault      Color = iota
	ColorWhite              // Lane markings
	ColorGray               // Road edges
	ColorOrange             // Barriers
	ColorBrightRed          // Car
	ColorBrightWhite        // Text
	ColorBrightYellow       // Message box frame
)
