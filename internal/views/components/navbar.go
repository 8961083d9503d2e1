package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NavBar is the Previous / Back / Next row under the slideshow
type NavBar struct {
	container      *fyne.Container
	PreviousButton *widget.Button
	BackButton     *widget.Button
	NextButton     *widget.Button

	// Event handlers
	previousHandler func()
	backHandler     func()
	nextHandler     func()
}

// NewNavBar creates a new navigation bar component
func NewNavBar() *NavBar {
	nb := &NavBar{}
	nb.createComponents()
	nb.buildLayout()
	nb.setupEventHandlers()
	return nb
}

// createComponents initializes all navigation buttons
func (nb *NavBar) createComponents() {
	nb.PreviousButton = widget.NewButton("Previous", nil)
	nb.PreviousButton.Importance = widget.DangerImportance

	nb.BackButton = widget.NewButton("Back", nil)
	nb.BackButton.Importance = widget.MediumImportance

	nb.NextButton = widget.NewButton("Next", nil)
	nb.NextButton.Importance = widget.SuccessImportance
}

// buildLayout constructs the navigation bar layout
func (nb *NavBar) buildLayout() {
	nb.container = container.NewCenter(container.NewHBox(
		nb.PreviousButton,
		nb.BackButton,
		nb.NextButton,
	))
}

// setupEventHandlers connects button events
func (nb *NavBar) setupEventHandlers() {
	nb.PreviousButton.OnTapped = func() {
		if nb.previousHandler != nil {
			nb.previousHandler()
		}
	}

	nb.BackButton.OnTapped = func() {
		if nb.backHandler != nil {
			nb.backHandler()
		}
	}

	nb.NextButton.OnTapped = func() {
		if nb.nextHandler != nil {
			nb.nextHandler()
		}
	}
}

func (nb *NavBar) SetPreviousHandler(handler func()) {
	nb.previousHandler = handler
}

func (nb *NavBar) SetBackHandler(handler func()) {
	nb.backHandler = handler
}

func (nb *NavBar) SetNextHandler(handler func()) {
	nb.nextHandler = handler
}

// Detach drops every handler so late events do nothing
func (nb *NavBar) Detach() {
	nb.previousHandler = nil
	nb.backHandler = nil
	nb.nextHandler = nil
}

// GetContainer returns the navigation bar container
func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}
