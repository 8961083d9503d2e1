package controllers

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"safeguard/internal/logger"
	"safeguard/internal/navigation"
	"safeguard/internal/pages"
	"safeguard/internal/services"
	"safeguard/internal/views"

	"fyne.io/fyne/v2"
)

// Locator is what the shell needs from the geolocation service: the views'
// lookup and export plus the country of the last fix.
type Locator interface {
	views.Locator
	Country() string
}

// Settings are the tunables the shell passes on to pages.
type Settings struct {
	ExportPath    string
	QuizDelay     time.Duration
	Viewport      pages.MapViewport
	LookupTimeout time.Duration
}

// Dependencies wires the shell to its services.
type Dependencies struct {
	Content   views.ContentSource
	Locator   Locator
	Contacts  views.ContactStore
	Tiles     views.TileFetcher
	Opener    views.URLOpener
	Scheduler views.Scheduler
	Random    *rand.Rand // nil keeps quiz questions in file order
	Logger    logger.Logger
	Settings  Settings
	Quit      func()
}

// Shell owns the window and the single active page. Pages ask for a
// different page through Navigate; nothing else swaps the window content.
type Shell struct {
	ctx    context.Context
	window fyne.Window
	deps   Dependencies
	logger logger.Logger

	mu              sync.Mutex
	active          navigation.Page
	emergencyNumber string
	closed          bool
}

// NewShell resolves the emergency number once, then shows the main menu.
// The lookup blocks for at most Settings.LookupTimeout.
func NewShell(ctx context.Context, window fyne.Window, deps Dependencies) *Shell {
	if deps.Logger == nil {
		deps.Logger = logger.NoOp{}
	}
	if deps.Scheduler == nil {
		deps.Scheduler = views.FyneScheduler{}
	}
	if deps.Settings.Viewport == (pages.MapViewport{}) {
		deps.Settings.Viewport = pages.DefaultViewport()
	}

	s := &Shell{
		ctx:    ctx,
		window: window,
		deps:   deps,
		logger: deps.Logger,
	}

	s.emergencyNumber = s.resolveEmergencyNumber()
	s.logger.Info("Shell", "emergency number resolved", map[string]interface{}{
		"number": s.emergencyNumber,
	})

	s.Navigate(navigation.To(navigation.MainMenu))
	return s
}

func (s *Shell) resolveEmergencyNumber() string {
	if s.deps.Locator == nil {
		return services.DefaultEmergencyNumber
	}

	ctx := s.ctx
	if s.deps.Settings.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deps.Settings.LookupTimeout)
		defer cancel()
	}

	if _, ok := s.deps.Locator.CurrentCoordinates(ctx); !ok {
		return services.DefaultEmergencyNumber
	}
	return services.EmergencyNumber(s.deps.Locator.Country())
}

// Navigate disposes the active page and shows the requested one. Exit
// disposes and calls the quit hook.
func (s *Shell) Navigate(req navigation.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	from := "none"
	if s.active != nil {
		from = s.active.ID().String()
		s.active.Dispose()
		s.active = nil
	}

	s.logger.Debug("Shell", "navigate", map[string]interface{}{
		"from": from,
		"to":   req.To.String(),
	})

	if req.To == navigation.Exit {
		s.closed = true
		if s.deps.Quit != nil {
			s.deps.Quit()
		}
		return
	}

	page := s.build(req.To)
	s.active = page
	s.window.SetContent(page.Content())
}

func (s *Shell) build(id navigation.PageID) navigation.Page {
	d := s.deps

	switch id {
	case navigation.MoreMenu:
		return views.NewMoreMenuView(s, d.Logger)
	case navigation.Alerts:
		return views.NewAlertsView(s, d.Content.Alerts(), d.Logger)
	case navigation.Slideshow:
		state := pages.NewSlideshow(d.Content.Instructions())
		return views.NewSlideshowView(s, s.window.Canvas(), state, d.Logger)
	case navigation.Quiz:
		session := pages.NewQuizSession(d.Content.Questions(), d.Random)
		return views.NewQuizView(s, session, d.Scheduler, d.Settings.QuizDelay, d.Logger)
	case navigation.Resources:
		return views.NewResourcesView(s, d.Content.Resources(), d.Opener, d.Logger)
	case navigation.Map:
		return views.NewMapView(s.ctx, s, d.Settings.Viewport, d.Tiles, d.Opener, s.emergencyNumber, d.Logger)
	case navigation.GPS:
		return views.NewGPSView(s.ctx, s, s.window, d.Locator, d.Settings.ExportPath, d.Logger)
	case navigation.Contacts:
		return views.NewContactsView(s.ctx, s, s.window, d.Contacts, d.Logger)
	case navigation.MainMenu:
		return views.NewMainMenuView(s, s.emergencyNumber, d.Logger)
	default:
		s.logger.Warning("Shell", "unknown page requested", map[string]interface{}{
			"page": id.String(),
		})
		return views.NewMainMenuView(s, s.emergencyNumber, d.Logger)
	}
}

// Active is the page currently shown, nil after Exit or Shutdown.
func (s *Shell) Active() navigation.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Shell) EmergencyNumber() string {
	return s.emergencyNumber
}

// Shutdown disposes the active page. Further navigation is ignored.
func (s *Shell) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.active.Dispose()
		s.active = nil
	}
	s.closed = true
	s.logger.Info("Shell", "shell shut down", nil)
}
