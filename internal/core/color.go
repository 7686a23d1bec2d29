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
	ColorOrange
	ColorGray
)

// TilePalette maps tile identities to colors. Identities beyond the palette
// wrap around, so boards with more than eight tile types reuse colors and
// only the glyph tells those tiles apart.
var TilePalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// TileColor returns the palette color for a tile identity.
// Negative identities (cleared slots) are gray.
func TileColor(identity int) Color {
	if identity < 0 {
		return ColorGray
	}
	return TilePalette[identity%len(TilePalette)]
}
