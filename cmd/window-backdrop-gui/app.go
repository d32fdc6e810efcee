package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/yourusername/window-backdrop/internal/config"
	"github.com/yourusername/window-backdrop/internal/logger"
	"github.com/yourusername/window-backdrop/internal/theme"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

// EventApplied is emitted after every apply or clear request.
const EventApplied = "backdrop:applied"

// App is the service exposed to the frontend.
type App struct {
	sys     backdrop.System
	applier *backdrop.Applier
	cfg     *config.Config

	// handle returns the native handle of the main window.
	handle func() backdrop.HWND
	// emit sends an event to the frontend.
	emit func(name string, data any)
	// debounced runs f once a burst of calls has settled.
	debounced func(f func())

	mu      sync.Mutex
	current *backdrop.Effect
	mode    string
}

// SystemInfo describes the running system to the frontend.
type SystemInfo struct {
	Version      string      `json:"version"`
	KnownVersion bool        `json:"knownVersion"`
	Dark         bool        `json:"dark"`
	Effects      []string    `json:"effects"`
	Routes       []RouteInfo `json:"routes"`
	Default      Selection   `json:"default"`
}

// RouteInfo is one effect and the mechanism used for it.
type RouteInfo struct {
	Effect    string `json:"effect"`
	Mechanism string `json:"mechanism"`
	Supported bool   `json:"supported"`
}

// Selection is an effect and a theme mode.
type Selection struct {
	Effect string `json:"effect"`
	Theme  string `json:"theme"`
}

// AppliedEvent is the payload of EventApplied.
type AppliedEvent struct {
	ID        string    `json:"id"`
	Effect    string    `json:"effect"`
	Cleared   bool      `json:"cleared"`
	Dark      bool      `json:"dark"`
	Mechanism string    `json:"mechanism"`
	At        time.Time `json:"at"`
}

// NewApp creates the service over sys. cfg supplies the initial selection.
func NewApp(sys backdrop.System, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{
		sys:       sys,
		applier:   backdrop.NewApplier(sys),
		cfg:       cfg,
		handle:    func() backdrop.HWND { return 0 },
		emit:      func(string, any) {},
		debounced: func(f func()) { f() },
		mode:      cfg.Theme,
	}
}

// ServiceName returns the service name.
func (a *App) ServiceName() string {
	return "backdrop"
}

// ServiceStartup is called when the application starts.
func (a *App) ServiceStartup(ctx context.Context, options application.ServiceOptions) error {
	v, known := a.sys.Version()
	logger.Info("Windows version %s (detected=%v)", v, known)
	return nil
}

// ServiceShutdown is called when the application exits.
func (a *App) ServiceShutdown() error {
	logger.Debug("Backdrop service stopped")
	return nil
}

// SystemInfo returns the detected version and how each effect would be
// applied on it.
func (a *App) SystemInfo() SystemInfo {
	v, known := a.sys.Version()

	return SystemInfo{
		Version:      v.String(),
		KnownVersion: known,
		Dark:         theme.IsDark(),
		Effects: lo.Map(backdrop.Effects(), func(e backdrop.Effect, _ int) string {
			return e.String()
		}),
		Routes: lo.Map(backdrop.Routes(v), func(r backdrop.Route, _ int) RouteInfo {
			return RouteInfo{
				Effect:    r.Effect.String(),
				Mechanism: string(r.Mechanism),
				Supported: r.Mechanism != backdrop.MechanismUnsupported,
			}
		}),
		Default: Selection{Effect: a.cfg.Effect, Theme: a.cfg.Theme},
	}
}

// ApplyEffect applies the named effect to the main window. mode is auto,
// dark or light.
func (a *App) ApplyEffect(name, mode string) (AppliedEvent, error) {
	effect, err := backdrop.ParseEffect(name)
	if err != nil {
		return AppliedEvent{}, err
	}
	if mode == "" {
		mode = theme.ModeAuto
	}
	if !theme.ValidMode(mode) {
		return AppliedEvent{}, fmt.Errorf("invalid theme %q (want auto, dark or light)", mode)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ev := a.apply(effect, mode)
	a.current = &effect
	a.mode = mode
	return ev, nil
}

// ClearEffect removes the named effect from the main window.
func (a *App) ClearEffect(name string) (AppliedEvent, error) {
	effect, err := backdrop.ParseEffect(name)
	if err != nil {
		return AppliedEvent{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	v, _ := a.sys.Version()
	_ = a.applier.Clear(a.handle(), effect)
	if a.current != nil && *a.current == effect {
		a.current = nil
	}

	ev := AppliedEvent{
		ID:        uuid.NewString(),
		Effect:    effect.String(),
		Cleared:   true,
		Mechanism: string(backdrop.RouteFor(v, effect)),
		At:        time.Now(),
	}
	a.emit(EventApplied, ev)
	return ev, nil
}

// ThemeChanged reapplies the current effect once the system theme settles.
// Only an effect applied with the auto theme follows the system.
func (a *App) ThemeChanged() {
	a.debounced(func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		if a.current == nil || a.mode != theme.ModeAuto {
			return
		}
		logger.Debug("System theme changed, reapplying %s", *a.current)
		a.apply(*a.current, a.mode)
	})
}

// apply applies effect and emits EventApplied. a.mu must be held.
func (a *App) apply(effect backdrop.Effect, mode string) AppliedEvent {
	v, _ := a.sys.Version()
	dark := theme.Resolve(mode)
	_ = a.applier.Apply(a.handle(), effect, dark)

	ev := AppliedEvent{
		ID:        uuid.NewString(),
		Effect:    effect.String(),
		Dark:      dark,
		Mechanism: string(backdrop.RouteFor(v, effect)),
		At:        time.Now(),
	}
	a.emit(EventApplied, ev)
	return ev
}
