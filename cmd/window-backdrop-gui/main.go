package main

import (
	"embed"
	"log"
	"time"

	"github.com/bep/debounce"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/yourusername/window-backdrop/internal/config"
	"github.com/yourusername/window-backdrop/internal/logger"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

// Everything under frontend/dist is served to the webview.
//
//go:embed all:frontend/dist
var assets embed.FS

// themeDebounce absorbs the burst of theme-changed events Windows sends when
// the user switches between light and dark.
const themeDebounce = 250 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Using default configuration: %v", err)
		cfg = config.Default()
	}

	if err := logger.SetupLogging(cfg.Verbose, cfg.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	appService := NewApp(backdrop.NativeSystem(), cfg)
	appService.debounced = debounce.New(themeDebounce)

	app := application.New(application.Options{
		Name:        "Window Backdrop",
		Description: "Try blur, acrylic, Mica and tabbed backdrops on a live window",
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
		Windows: application.WindowsOptions{},
	})

	appService.emit = func(name string, data any) {
		app.Event.Emit(name, data)
	}

	// The backdrop is drawn by this process, so wails must not paint one of
	// its own or an opaque background over it.
	win := app.Window.NewWithOptions(application.WebviewWindowOptions{
		Title: "Window Backdrop",
		Windows: application.WindowsWindow{
			BackdropType: application.None,
		},
		BackgroundType:   application.BackgroundTypeTransparent,
		BackgroundColour: application.NewRGBA(0, 0, 0, 0),
		URL:              "/",
		Width:            720,
		Height:           520,
		MinWidth:         480,
		MinHeight:        360,
	})

	appService.handle = func() backdrop.HWND {
		return backdrop.HWND(uintptr(win.NativeWindow()))
	}

	app.Event.OnApplicationEvent(events.Common.ThemeChanged, func(*application.ApplicationEvent) {
		appService.ThemeChanged()
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
