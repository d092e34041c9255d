package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors. Tile colors run from ColorTile2 upward, one per power of two.
const (
	ColorDefault Color = iota
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // Anything above 2048
)

// TileColor returns the color for a tile value.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	c := ColorTile2
	for v := 2; v < value; v *= 2 {
		c++
		if c == ColorTileSuper {
			break
		}
	}
	return c
}
