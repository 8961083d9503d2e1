package views

import (
	"fmt"

	"safeguard/internal/logger"
	"safeguard/internal/navigation"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainMenuView is the landing page with the local emergency number.
type MainMenuView struct {
	page
	numberLabel *widget.Label
	buttons     []*widget.Button
}

func NewMainMenuView(nav navigation.Navigator, emergencyNumber string, log logger.Logger) *MainMenuView {
	v := &MainMenuView{page: newPage(navigation.MainMenu, nav, log)}

	v.numberLabel = widget.NewLabelWithStyle(
		fmt.Sprintf("Emergency Number: %s", emergencyNumber),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	v.numberLabel.Importance = widget.DangerImportance

	v.buttons = []*widget.Button{
		components.NewMenuButton("Disaster Slideshow", widget.HighImportance, func() { v.navigate(navigation.Slideshow) }),
		components.NewMenuButton("Disaster Alerts", widget.WarningImportance, func() { v.navigate(navigation.Alerts) }),
		components.NewMenuButton("More", widget.MediumImportance, func() { v.navigate(navigation.MoreMenu) }),
		components.NewMenuButton("Exit", widget.DangerImportance, func() { v.navigate(navigation.Exit) }),
	}

	v.mount(menuLayout("SafeGuard", v.numberLabel, v.buttons))
	return v
}

// EmergencyNumberText is the number line as displayed.
func (v *MainMenuView) EmergencyNumberText() string {
	return v.numberLabel.Text
}

func (v *MainMenuView) Dispose() {
	v.teardown(nil)
}

// MoreMenuView lists the secondary pages.
type MoreMenuView struct {
	page
	buttons []*widget.Button
}

func NewMoreMenuView(nav navigation.Navigator, log logger.Logger) *MoreMenuView {
	v := &MoreMenuView{page: newPage(navigation.MoreMenu, nav, log)}

	v.buttons = []*widget.Button{
		components.NewMenuButton("Resource Center", widget.MediumImportance, func() { v.navigate(navigation.Resources) }),
		components.NewMenuButton("Disaster Quiz", widget.SuccessImportance, func() { v.navigate(navigation.Quiz) }),
		components.NewMenuButton("Interactive Map", widget.MediumImportance, func() { v.navigate(navigation.Map) }),
		components.NewMenuButton("GPS Tracker", widget.MediumImportance, func() { v.navigate(navigation.GPS) }),
		components.NewMenuButton("Emergency Contacts", widget.WarningImportance, func() { v.navigate(navigation.Contacts) }),
		components.NewMenuButton("Back", widget.LowImportance, func() { v.navigate(navigation.MainMenu) }),
	}

	v.mount(menuLayout("More Options", nil, v.buttons))
	return v
}

func (v *MoreMenuView) Dispose() {
	v.teardown(nil)
}

// Button returns the menu entry with the given text, or nil.
func (v *MainMenuView) Button(text string) *widget.Button {
	return findButton(v.buttons, text)
}

// Button returns the menu entry with the given text, or nil.
func (v *MoreMenuView) Button(text string) *widget.Button {
	return findButton(v.buttons, text)
}

func findButton(buttons []*widget.Button, text string) *widget.Button {
	for _, b := range buttons {
		if b.Text == text {
			return b
		}
	}
	return nil
}

func menuLayout(title string, subtitle fyne.CanvasObject, buttons []*widget.Button) fyne.CanvasObject {
	top := container.NewVBox(components.NewTitle(title))
	if subtitle != nil {
		top.Add(subtitle)
	}
	top.Add(widget.NewSeparator())

	entries := container.NewVBox()
	for _, b := range buttons {
		entries.Add(b)
	}

	return container.NewBorder(top, nil, nil, nil, container.NewPadded(entries))
}
