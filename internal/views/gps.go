package views

import (
	"context"
	"errors"
	"fmt"

	"safeguard/internal/logger"
	"safeguard/internal/navigation"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	coordinatesUnknown     = "Coordinates: N/A"
	coordinatesUnavailable = "Coordinates: Unable to fetch location"
)

var errLocationUnavailable = errors.New("Unable to fetch location.")

// GPSView shows the current coordinates and exports them to a flat file.
// Lookups block the UI goroutine until they resolve.
type GPSView struct {
	page
	ctx        context.Context
	window     fyne.Window
	locator    Locator
	exportPath string

	coords *widget.Label
	fetch  *widget.Button
	export *widget.Button
	back   *widget.Button
	status *components.StatusLine
}

func NewGPSView(ctx context.Context, nav navigation.Navigator, window fyne.Window, locator Locator, exportPath string, log logger.Logger) *GPSView {
	v := &GPSView{
		page:       newPage(navigation.GPS, nav, log),
		ctx:        ctx,
		window:     window,
		locator:    locator,
		exportPath: exportPath,
	}

	v.coords = widget.NewLabelWithStyle(coordinatesUnknown, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.fetch = widget.NewButton("Get Location", v.FetchLocation)
	v.fetch.Importance = widget.HighImportance
	v.export = widget.NewButton("Export Location", v.ExportLocation)
	v.back = v.backButton()
	v.status = components.NewStatusLine("")

	v.mount(container.NewBorder(
		components.NewTitle("GPS Tracker"),
		container.NewVBox(container.NewCenter(v.back), v.status.GetContainer()),
		nil, nil,
		container.NewVBox(v.coords, v.fetch, v.export),
	))
	return v
}

// FetchLocation looks up and displays the current coordinates.
func (v *GPSView) FetchLocation() {
	if !v.Active() {
		return
	}

	coords, ok := v.locator.CurrentCoordinates(v.ctx)
	if !ok {
		v.coords.SetText(coordinatesUnavailable)
		return
	}
	v.coords.SetText(fmt.Sprintf("Coordinates: %g, %g", coords.Latitude, coords.Longitude))
}

// ExportLocation looks up the coordinates and writes them to the export file.
func (v *GPSView) ExportLocation() {
	if !v.Active() {
		return
	}

	coords, ok := v.locator.CurrentCoordinates(v.ctx)
	if !ok {
		v.status.SetStatus("Unable to fetch location.")
		v.showError(errLocationUnavailable)
		return
	}

	if err := v.locator.ExportCoordinates(coords, v.exportPath); err != nil {
		v.logger.Error("GPSView", err, map[string]interface{}{"path": v.exportPath})
		v.status.SetStatus("Export failed.")
		v.showError(err)
		return
	}

	v.status.SetStatus(fmt.Sprintf("Exported %s to %s", coords, v.exportPath))
	if v.window != nil {
		dialog.ShowInformation("Success", "Location exported successfully.", v.window)
	}
}

func (v *GPSView) showError(err error) {
	if v.window != nil {
		dialog.ShowError(err, v.window)
	}
}

// CoordinatesText is the coordinate line as displayed.
func (v *GPSView) CoordinatesText() string {
	return v.coords.Text
}

func (v *GPSView) Status() string {
	return v.status.GetStatus()
}

func (v *GPSView) Dispose() {
	v.teardown(nil)
}
