package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	TileDisplaySize = 120
	tilePixels      = 256
)

// TileGrid shows a square block of map tiles, each starting as a placeholder
type TileGrid struct {
	container   *fyne.Container
	tiles       []*canvas.Image
	placeholder image.Image
	loaded      []bool
}

// NewTileGrid creates a side x side grid of placeholder tiles
func NewTileGrid(side int) *TileGrid {
	grid := &TileGrid{}
	grid.createComponents(side)
	grid.setupLayout(side)
	return grid
}

func (tg *TileGrid) createComponents(side int) {
	tg.placeholder = createPlaceholderImage()
	tg.tiles = make([]*canvas.Image, side*side)
	tg.loaded = make([]bool, side*side)

	for i := range tg.tiles {
		img := canvas.NewImageFromImage(tg.placeholder)
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScaleSmooth
		img.SetMinSize(fyne.NewSize(TileDisplaySize, TileDisplaySize))
		tg.tiles[i] = img
	}
}

// createPlaceholderImage draws a light grey square with a border
func createPlaceholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, tilePixels, tilePixels))

	lightGray := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	borderColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < tilePixels; y++ {
		for x := 0; x < tilePixels; x++ {
			if x == 0 || y == 0 || x == tilePixels-1 || y == tilePixels-1 {
				img.Set(x, y, borderColor)
			} else {
				img.Set(x, y, lightGray)
			}
		}
	}
	return img
}

func (tg *TileGrid) setupLayout(side int) {
	objects := make([]fyne.CanvasObject, len(tg.tiles))
	for i, tile := range tg.tiles {
		objects[i] = tile
	}
	tg.container = container.NewGridWithColumns(side, objects...)
}

// SetTile replaces tile i; a nil image restores the placeholder. Must run
// on the UI goroutine.
func (tg *TileGrid) SetTile(i int, img image.Image) {
	if i < 0 || i >= len(tg.tiles) {
		return
	}
	if img == nil {
		tg.tiles[i].Image = tg.placeholder
		tg.loaded[i] = false
	} else {
		tg.tiles[i].Image = img
		tg.loaded[i] = true
	}
	tg.tiles[i].Refresh()
}

// Loaded counts tiles showing real imagery
func (tg *TileGrid) Loaded() int {
	n := 0
	for _, ok := range tg.loaded {
		if ok {
			n++
		}
	}
	return n
}

// Len is the number of tile slots
func (tg *TileGrid) Len() int {
	return len(tg.tiles)
}

// GetContainer returns the grid container
func (tg *TileGrid) GetContainer() *fyne.Container {
	return tg.container
}
