package views

import (
	"context"
	"fmt"
	"image"
	"net/url"

	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/navigation"
	"safeguard/internal/pages"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const mapTileRadius = 1

// MapView shows the tiles around a fixed centre. Tiles are fetched in the
// background and applied on the UI goroutine; results arriving after
// disposal are dropped.
type MapView struct {
	page
	viewport pages.MapViewport
	opener   URLOpener
	grid     *components.TileGrid
	contact  *widget.Label
	browser  *widget.Button
	back     *widget.Button
	cancel   context.CancelFunc
}

func NewMapView(ctx context.Context, nav navigation.Navigator, viewport pages.MapViewport, tiles TileFetcher, opener URLOpener, emergencyNumber string, log logger.Logger) *MapView {
	v := &MapView{
		page:     newPage(navigation.Map, nav, log),
		viewport: viewport,
		opener:   opener,
	}

	v.grid = components.NewTileGrid(2*mapTileRadius + 1)
	v.contact = widget.NewLabelWithStyle(
		fmt.Sprintf("Emergency Contact: %s", emergencyNumber),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	v.contact.Importance = widget.DangerImportance
	v.browser = widget.NewButton("Open in Browser", v.openInBrowser)
	v.back = v.backButton()

	attribution := widget.NewLabelWithStyle("© OpenStreetMap contributors", fyne.TextAlignTrailing, fyne.TextStyle{Italic: true})

	v.mount(container.NewBorder(
		components.NewTitle("Interactive Map"),
		container.NewVBox(v.contact, container.NewCenter(container.NewHBox(v.browser, v.back))),
		nil, nil,
		container.NewVBox(container.NewCenter(v.grid.GetContainer()), attribution),
	))

	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	if tiles != nil {
		v.loadTiles(fetchCtx, tiles)
	}
	return v
}

func (v *MapView) loadTiles(ctx context.Context, tiles TileFetcher) {
	for i, tile := range v.viewport.Tiles(mapTileRadius) {
		go func(i int, tile models.Tile) {
			img, err := tiles.Fetch(ctx, tile)
			if err != nil {
				if ctx.Err() == nil {
					v.logger.Warning("MapView", "tile unavailable", map[string]interface{}{
						"z":     tile.Z,
						"x":     tile.X,
						"y":     tile.Y,
						"error": err.Error(),
					})
				}
				return
			}
			fyne.Do(func() { v.applyTile(i, img) })
		}(i, tile)
	}
}

func (v *MapView) applyTile(i int, img image.Image) {
	if !v.Active() {
		return
	}
	v.grid.SetTile(i, img)
}

func (v *MapView) openInBrowser() {
	if !v.Active() {
		return
	}
	target, err := url.Parse(v.viewport.OpenStreetMapURL())
	if err == nil {
		err = v.opener.OpenURL(target)
	}
	if err != nil {
		v.logger.Error("MapView", err, nil)
	}
}

// ContactText is the emergency line as displayed.
func (v *MapView) ContactText() string {
	return v.contact.Text
}

func (v *MapView) Grid() *components.TileGrid {
	return v.grid
}

func (v *MapView) BrowserButton() *widget.Button {
	return v.browser
}

func (v *MapView) Dispose() {
	v.teardown(func() {
		v.cancel()
	})
}
