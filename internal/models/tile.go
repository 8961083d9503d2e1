package models

// Tile addresses one slippy-map raster tile.
type Tile struct {
	X, Y, Z int
}
