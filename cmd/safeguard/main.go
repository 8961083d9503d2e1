package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"runtime"
	"time"

	"safeguard/internal/config"
	"safeguard/internal/controllers"
	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/pages"
	"safeguard/internal/services"
	"safeguard/internal/shutdown"
	"safeguard/internal/storage"
	"safeguard/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "SafeGuard"
	AppID      = "com.safeguard.app"
	AppVersion = "1.0.0"

	tileTimeout = 10 * time.Second
)

// Application holds the long-lived pieces the window needs.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	shell    *controllers.Shell
	shutdown *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication opens the contacts store, builds the services and shows
// the main menu. Any storage failure here is fatal.
func NewApplication(cfg *config.Config) (*Application, error) {
	appLogger := logger.New(cfg.Log.Level, cfg.Log.JSON)

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"app_root":   cfg.AppRoot,
		"go_version": runtime.Version(),
		"log_level":  cfg.Log.Level,
	})

	store, err := storage.NewContactsStore(cfg.Database.Path, appLogger)
	if err != nil {
		return nil, fmt.Errorf("open contacts store: %w", err)
	}

	manager := shutdown.NewManager(appLogger)

	if err := store.EnsureSchema(manager.Context()); err != nil {
		return nil, fmt.Errorf("prepare contacts store: %w", err)
	}

	content := services.NewContentService(services.ContentPaths{
		Alerts:       cfg.Data.Alerts,
		Instructions: cfg.Data.Instructions,
		Questions:    cfg.Data.Questions,
		Resources:    cfg.Data.Resources,
	}, appLogger)
	locator := services.NewLocationService(cfg.GPS.Endpoint, cfg.GPS.Timeout, appLogger)
	tiles := services.NewTileService(&http.Client{Timeout: tileTimeout}, cfg.Map.TileURL, appLogger)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	shell := controllers.NewShell(manager.Context(), window, controllers.Dependencies{
		Content:   content,
		Locator:   locator,
		Contacts:  store,
		Tiles:     tiles,
		Opener:    fyneApp,
		Scheduler: views.FyneScheduler{},
		Random:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		Logger:    appLogger,
		Settings: controllers.Settings{
			ExportPath: cfg.GPS.ExportPath,
			QuizDelay:  cfg.Quiz.AnswerDelay,
			Viewport: pages.MapViewport{
				Center: models.Coordinates{Latitude: cfg.Map.Latitude, Longitude: cfg.Map.Longitude},
				Zoom:   cfg.Map.Zoom,
			},
			LookupTimeout: cfg.GPS.Timeout,
		},
		Quit: fyneApp.Quit,
	})

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		logger:   appLogger,
		config:   cfg,
		shell:    shell,
		shutdown: manager,
	}

	manager.Register(shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	manager.Register(shutdown.Func(func() {
		fyne.DoAndWait(shell.Shutdown)
	}))

	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"database":         store.Path(),
		"emergency_number": shell.EmergencyNumber(),
	})

	return application, nil
}

// Run shows the window and blocks until the app quits.
func (a *Application) Run() {
	a.shutdown.Listen()
	a.window.ShowAndRun()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.shell.Shutdown()
		a.window.Close()
	})

	a.window.SetOnClosed(func() {
		go a.shutdown.Shutdown()
	})
}
