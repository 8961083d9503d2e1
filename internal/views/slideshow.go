package views

import (
	"fmt"

	"safeguard/internal/logger"
	"safeguard/internal/navigation"
	"safeguard/internal/pages"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SlideshowView pages through safety instructions. Left/Right arrows and
// Return are bound on the window canvas while the view is active.
type SlideshowView struct {
	page
	state    *pages.Slideshow
	canvas   fyne.Canvas
	text     *widget.Label
	position *widget.Label
	navBar   *components.NavBar
}

func NewSlideshowView(nav navigation.Navigator, canvas fyne.Canvas, state *pages.Slideshow, log logger.Logger) *SlideshowView {
	v := &SlideshowView{
		page:   newPage(navigation.Slideshow, nav, log),
		state:  state,
		canvas: canvas,
	}

	v.text = components.NewParagraph("")
	v.position = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	v.navBar = components.NewNavBar()
	v.navBar.SetPreviousHandler(v.Previous)
	v.navBar.SetNextHandler(v.Next)
	v.navBar.SetBackHandler(func() { v.navigate(navigation.MainMenu) })

	v.mount(container.NewBorder(
		components.NewTitle("Disaster Slideshow"),
		container.NewVBox(v.position, v.navBar.GetContainer()),
		nil, nil,
		container.NewVScroll(container.NewPadded(v.text)),
	))

	if canvas != nil {
		canvas.SetOnTypedKey(v.typedKey)
	}
	v.render()
	return v
}

func (v *SlideshowView) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		v.Previous()
	case fyne.KeyRight, fyne.KeyReturn, fyne.KeyEnter:
		v.Next()
	}
}

// Next shows the following instruction, wrapping to the first.
func (v *SlideshowView) Next() {
	if !v.Active() {
		return
	}
	v.state.Next()
	v.render()
}

// Previous shows the preceding instruction, wrapping to the last.
func (v *SlideshowView) Previous() {
	if !v.Active() {
		return
	}
	v.state.Previous()
	v.render()
}

func (v *SlideshowView) render() {
	v.text.SetText(string(v.state.Current()))
	v.position.SetText(fmt.Sprintf("%d / %d", v.state.Index()+1, v.state.Len()))
}

// Text is the instruction currently displayed.
func (v *SlideshowView) Text() string {
	return v.text.Text
}

func (v *SlideshowView) NavBar() *components.NavBar {
	return v.navBar
}

func (v *SlideshowView) Dispose() {
	v.teardown(func() {
		if v.canvas != nil {
			v.canvas.SetOnTypedKey(nil)
		}
		v.navBar.Detach()
	})
}
