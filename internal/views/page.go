package views

import (
	"context"
	"image"
	"net/url"
	"time"

	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/navigation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ContentSource supplies the static page content.
type ContentSource interface {
	Alerts() []models.Alert
	Instructions() []models.Instruction
	Questions() []models.QuizQuestion
	Resources() []models.ResourceCategory
}

// Locator resolves and exports the current position.
type Locator interface {
	CurrentCoordinates(ctx context.Context) (models.Coordinates, bool)
	ExportCoordinates(coords models.Coordinates, path string) error
}

// ContactStore persists emergency contacts.
type ContactStore interface {
	List(ctx context.Context, country string) ([]models.Contact, error)
	Add(ctx context.Context, contact models.Contact) (models.Contact, error)
}

// TileFetcher downloads map tiles.
type TileFetcher interface {
	Fetch(ctx context.Context, tile models.Tile) (image.Image, error)
}

// URLOpener hands a URL to the platform's default handler. fyne.App
// satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// Scheduler runs f once on the UI goroutine after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// page holds what every view shares: identity, the navigator it reports
// to, its lifecycle and the root container all its widgets live in.
type page struct {
	id        navigation.PageID
	nav       navigation.Navigator
	logger    logger.Logger
	lifecycle *navigation.Lifecycle
	root      *fyne.Container
}

func newPage(id navigation.PageID, nav navigation.Navigator, log logger.Logger) page {
	return page{
		id:        id,
		nav:       nav,
		logger:    log,
		lifecycle: &navigation.Lifecycle{},
		root:      container.NewStack(),
	}
}

func (p *page) ID() navigation.PageID {
	return p.id
}

func (p *page) Content() fyne.CanvasObject {
	return p.root
}

// Active reports whether the page still reacts to input.
func (p *page) Active() bool {
	return p.lifecycle.Active()
}

// mount sets the page's widget tree.
func (p *page) mount(content fyne.CanvasObject) {
	p.root.Objects = []fyne.CanvasObject{content}
	p.root.Refresh()
}

// navigate asks for another page unless this one is already gone.
func (p *page) navigate(id navigation.PageID) {
	if !p.lifecycle.Active() {
		return
	}
	p.nav.Navigate(navigation.To(id))
}

// teardown disposes the page once: extra first, then every widget.
func (p *page) teardown(extra func()) {
	p.lifecycle.Dispose(func() {
		if extra != nil {
			extra()
		}
		p.root.RemoveAll()
		p.logger.Debug("Page", "disposed", map[string]interface{}{
			"page": p.id.String(),
		})
	})
}

func (p *page) backButton() *widget.Button {
	return widget.NewButton("Back", func() {
		p.navigate(navigation.MainMenu)
	})
}

// FyneScheduler defers work with time.AfterFunc and marshals it back onto
// the Fyne UI goroutine. Timers are not cancellable once armed.
type FyneScheduler struct{}

func (FyneScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}
