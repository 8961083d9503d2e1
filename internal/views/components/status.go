package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusLine displays the outcome of the last action on a page
type StatusLine struct {
	container   *fyne.Container
	statusLabel *widget.Label
	initial     string
}

// NewStatusLine creates a status line showing initial until the first update
func NewStatusLine(initial string) *StatusLine {
	sl := &StatusLine{initial: initial}
	sl.createComponents()
	sl.buildLayout()
	return sl
}

func (sl *StatusLine) createComponents() {
	sl.statusLabel = widget.NewLabel(sl.initial)
	sl.statusLabel.Wrapping = fyne.TextWrapWord
}

func (sl *StatusLine) buildLayout() {
	sl.container = container.NewVBox(
		widget.NewSeparator(),
		sl.statusLabel,
	)
}

// SetStatus updates the message. Must run on the UI goroutine.
func (sl *StatusLine) SetStatus(status string) {
	sl.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sl *StatusLine) GetStatus() string {
	return sl.statusLabel.Text
}

// Reset restores the initial message
func (sl *StatusLine) Reset() {
	sl.statusLabel.SetText(sl.initial)
}

// GetContainer returns the status line container
func (sl *StatusLine) GetContainer() *fyne.Container {
	return sl.container
}
