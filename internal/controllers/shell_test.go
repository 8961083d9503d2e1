package controllers

import (
	"context"
	"testing"
	"time"

	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/navigation"
	"safeguard/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContent struct{}

func (stubContent) Alerts() []models.Alert {
	return []models.Alert{"Flood warning"}
}

func (stubContent) Instructions() []models.Instruction {
	return []models.Instruction{"Stay indoors", "Keep water"}
}

func (stubContent) Questions() []models.QuizQuestion {
	return []models.QuizQuestion{{Question: "Call?", Options: []string{"112", "000"}, Answer: 0}}
}

func (stubContent) Resources() []models.ResourceCategory {
	return []models.ResourceCategory{{Name: "General", Links: []string{"https://example.org"}}}
}

type stubLocator struct {
	ok      bool
	country string
	calls   int
}

func (l *stubLocator) CurrentCoordinates(ctx context.Context) (models.Coordinates, bool) {
	l.calls++
	return models.Coordinates{Latitude: 12.9, Longitude: 77.6}, l.ok
}

func (l *stubLocator) ExportCoordinates(models.Coordinates, string) error { return nil }

func (l *stubLocator) Country() string {
	if !l.ok {
		return ""
	}
	return l.country
}

type stubStore struct{}

func (stubStore) List(context.Context, string) ([]models.Contact, error) { return nil, nil }

func (stubStore) Add(_ context.Context, c models.Contact) (models.Contact, error) { return c, nil }

type immediate struct{}

func (immediate) AfterFunc(_ time.Duration, f func()) { f() }

func newTestShell(t *testing.T, loc *stubLocator) (*Shell, *bool) {
	t.Helper()
	test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	quit := false
	shell := NewShell(context.Background(), window, Dependencies{
		Content:   stubContent{},
		Locator:   loc,
		Contacts:  stubStore{},
		Scheduler: immediate{},
		Logger:    logger.NoOp{},
		Quit:      func() { quit = true },
	})
	return shell, &quit
}

func TestNewShell_EmergencyNumber(t *testing.T) {
	tests := []struct {
		name    string
		locator *stubLocator
		want    string
	}{
		{"mapped country", &stubLocator{ok: true, country: "United Kingdom"}, "999"},
		{"unmapped country", &stubLocator{ok: true, country: "Atlantis"}, "112"},
		{"lookup failure", &stubLocator{ok: false}, "112"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, _ := newTestShell(t, tt.locator)

			assert.Equal(t, tt.want, shell.EmergencyNumber())
			assert.Equal(t, 1, tt.locator.calls)

			menu, ok := shell.Active().(*views.MainMenuView)
			require.True(t, ok)
			assert.Equal(t, "Emergency Number: "+tt.want, menu.EmergencyNumberText())
		})
	}
}

func TestShell_NavigateDisposesPreviousPage(t *testing.T) {
	shell, _ := newTestShell(t, &stubLocator{})

	menu := shell.Active().(*views.MainMenuView)
	shell.Navigate(navigation.To(navigation.Alerts))

	assert.False(t, menu.Active())
	alerts, ok := shell.Active().(*views.AlertsView)
	require.True(t, ok)
	assert.Equal(t, []string{"Flood warning"}, alerts.Texts())

	test.Tap(alerts.BackButton())
	assert.False(t, alerts.Active())
	assert.Equal(t, navigation.MainMenu, shell.Active().ID())
}

func TestShell_BuildsEveryPage(t *testing.T) {
	shell, _ := newTestShell(t, &stubLocator{ok: true, country: "India"})

	ids := []navigation.PageID{
		navigation.MoreMenu,
		navigation.Alerts,
		navigation.Slideshow,
		navigation.Quiz,
		navigation.Resources,
		navigation.Map,
		navigation.GPS,
		navigation.Contacts,
		navigation.MainMenu,
	}
	for _, id := range ids {
		shell.Navigate(navigation.To(id))
		require.NotNil(t, shell.Active(), id.String())
		assert.Equal(t, id, shell.Active().ID())
	}
}

func TestShell_MenuButtonsNavigate(t *testing.T) {
	shell, _ := newTestShell(t, &stubLocator{})

	test.Tap(shell.Active().(*views.MainMenuView).Button("More"))
	more, ok := shell.Active().(*views.MoreMenuView)
	require.True(t, ok)

	test.Tap(more.Button("Disaster Quiz"))
	assert.Equal(t, navigation.Quiz, shell.Active().ID())
}

func TestShell_Exit(t *testing.T) {
	shell, quit := newTestShell(t, &stubLocator{})
	menu := shell.Active().(*views.MainMenuView)

	test.Tap(menu.Button("Exit"))

	assert.True(t, *quit)
	assert.False(t, menu.Active())
	assert.Nil(t, shell.Active())

	shell.Navigate(navigation.To(navigation.Alerts))
	assert.Nil(t, shell.Active())
}

func TestShell_Shutdown(t *testing.T) {
	shell, quit := newTestShell(t, &stubLocator{})
	shell.Navigate(navigation.To(navigation.Slideshow))
	page := shell.Active().(*views.SlideshowView)

	shell.Shutdown()
	shell.Shutdown()

	assert.False(t, page.Active())
	assert.Nil(t, shell.Active())
	assert.False(t, *quit)
}
