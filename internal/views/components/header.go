package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewTitle creates the bold, centred page heading.
func NewTitle(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

// NewParagraph creates a word-wrapped label for free text.
func NewParagraph(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

// NewMenuButton creates a full-width menu entry.
func NewMenuButton(text string, importance widget.Importance, tapped func()) *widget.Button {
	button := widget.NewButton(text, tapped)
	button.Importance = importance
	return button
}
