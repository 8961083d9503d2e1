package navigation

import (
	"fyne.io/fyne/v2"
)

// PageID names a screen the shell can show.
type PageID int

const (
	MainMenu PageID = iota
	MoreMenu
	Alerts
	Slideshow
	Quiz
	Resources
	Map
	GPS
	Contacts
	Exit
)

var pageNames = map[PageID]string{
	MainMenu:  "main_menu",
	MoreMenu:  "more_menu",
	Alerts:    "alerts",
	Slideshow: "slideshow",
	Quiz:      "quiz",
	Resources: "resources",
	Map:       "map",
	GPS:       "gps",
	Contacts:  "contacts",
	Exit:      "exit",
}

func (id PageID) String() string {
	if name, ok := pageNames[id]; ok {
		return name
	}
	return "unknown"
}

// Request asks the shell to replace the active page.
type Request struct {
	To PageID
}

// To builds a navigation request.
func To(id PageID) Request {
	return Request{To: id}
}

// Navigator interprets navigation requests. Pages hold one and never touch
// the window themselves.
type Navigator interface {
	Navigate(req Request)
}

// Page is a mounted screen: its widget tree plus local interaction state.
type Page interface {
	ID() PageID
	Content() fyne.CanvasObject
	Dispose()
}
