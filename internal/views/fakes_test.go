package views

import (
	"context"
	"errors"
	"image"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"safeguard/internal/models"
	"safeguard/internal/navigation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

type navRecorder struct {
	requests []navigation.Request
}

func (n *navRecorder) Navigate(req navigation.Request) {
	n.requests = append(n.requests, req)
}

func (n *navRecorder) last() (navigation.PageID, bool) {
	if len(n.requests) == 0 {
		return 0, false
	}
	return n.requests[len(n.requests)-1].To, true
}

// manualScheduler holds callbacks until run is called.
type manualScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, f)
}

func (s *manualScheduler) run() {
	pending := s.pending
	s.pending = nil
	for _, f := range pending {
		f()
	}
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) OpenURL(u *url.URL) error {
	o.opened = append(o.opened, u.String())
	return o.err
}

type fakeLocator struct {
	coords    models.Coordinates
	ok        bool
	exportErr error
	exported  []string
}

func (l *fakeLocator) CurrentCoordinates(context.Context) (models.Coordinates, bool) {
	return l.coords, l.ok
}

func (l *fakeLocator) ExportCoordinates(coords models.Coordinates, path string) error {
	if l.exportErr != nil {
		return l.exportErr
	}
	l.exported = append(l.exported, path+"="+coords.String())
	return nil
}

type fakeStore struct {
	contacts []models.Contact
	listErr  error
	addErr   error
}

func (s *fakeStore) List(_ context.Context, country string) ([]models.Contact, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Contact
	for _, c := range s.contacts {
		if country == "" || c.Country == country {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeStore) Add(_ context.Context, c models.Contact) (models.Contact, error) {
	if s.addErr != nil {
		return models.Contact{}, s.addErr
	}
	c.Country = strings.TrimSpace(c.Country)
	if c.Country == "" {
		return models.Contact{}, errors.New("country is required")
	}
	c.ID = int64(len(s.contacts) + 1)
	s.contacts = append(s.contacts, c)
	return c, nil
}

type failingTiles struct {
	mu    sync.Mutex
	calls int
}

func (f *failingTiles) Fetch(context.Context, models.Tile) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil, errors.New("offline")
}

func (f *failingTiles) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestWindow(t *testing.T) fyne.Window {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return w
}
