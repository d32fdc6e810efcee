package main

import (
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/yourusername/window-backdrop/internal/config"
	"github.com/yourusername/window-backdrop/internal/logger"
	"github.com/yourusername/window-backdrop/internal/winver"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

type recorder struct {
	mu     sync.Mutex
	events []AppliedEvent
}

func (r *recorder) emit(name string, data any) {
	if name != EventApplied {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data.(AppliedEvent))
}

func newTestApp(t *testing.T, v winver.Version) (*App, *backdrop.Simulator, *recorder) {
	t.Helper()
	logger.SetOutput(io.Discard, false)
	t.Cleanup(func() { logger.Close() })

	sim := backdrop.NewSimulator(v)
	rec := &recorder{}
	app := NewApp(sim, config.Default())
	app.handle = func() backdrop.HWND { return 0x2a }
	app.emit = rec.emit
	return app, sim, rec
}

var win11 = winver.Version{Major: 10, Minor: 0, Build: 22621}

func TestSystemInfo(t *testing.T) {
	app, _, _ := newTestApp(t, win11)

	info := app.SystemInfo()
	if info.Version != "10.0.22621" || !info.KnownVersion {
		t.Errorf("version = %q known=%v", info.Version, info.KnownVersion)
	}
	if len(info.Effects) != len(backdrop.Effects()) {
		t.Errorf("effects = %v", info.Effects)
	}
	if len(info.Routes) != len(info.Effects) {
		t.Fatalf("routes = %v", info.Routes)
	}
	for _, r := range info.Routes {
		if !r.Supported {
			t.Errorf("%s unsupported on 22621", r.Effect)
		}
	}
	if info.Default.Effect != "mica" || info.Default.Theme != "auto" {
		t.Errorf("default = %+v", info.Default)
	}
}

func TestSystemInfoUnknownVersion(t *testing.T) {
	app, sim, _ := newTestApp(t, win11)
	sim.Known = false

	info := app.SystemInfo()
	if info.KnownVersion || info.Version != "0.0.0" {
		t.Errorf("got version %q known=%v", info.Version, info.KnownVersion)
	}
	for _, r := range info.Routes {
		if r.Effect != "blur" && r.Supported {
			t.Errorf("%s reported supported on an unknown version", r.Effect)
		}
	}
}

func TestApplyEffectEmitsEvent(t *testing.T) {
	app, sim, rec := newTestApp(t, win11)

	ev, err := app.ApplyEffect("mica", "dark")
	if err != nil {
		t.Fatalf("ApplyEffect: %v", err)
	}
	if _, err := uuid.Parse(ev.ID); err != nil {
		t.Errorf("event id %q is not a UUID: %v", ev.ID, err)
	}
	if ev.Effect != "mica" || !ev.Dark || ev.Cleared || ev.Mechanism != string(backdrop.MechanismSystemBackdrop) {
		t.Errorf("unexpected event %+v", ev)
	}
	if len(rec.events) != 1 || rec.events[0].ID != ev.ID {
		t.Errorf("emitted %+v", rec.events)
	}

	calls := sim.Calls()
	if len(calls) != 2 {
		t.Fatalf("calls = %v", calls)
	}
	if calls[0].HWND != 0x2a || calls[0].Attribute != backdrop.AttrUseImmersiveDarkMode || calls[0].Value != 1 {
		t.Errorf("first call = %v", calls[0])
	}
	if calls[1].Attribute != backdrop.AttrSystemBackdropType || calls[1].Value != uint32(backdrop.BackdropMainWindow) {
		t.Errorf("second call = %v", calls[1])
	}
}

func TestApplyEffectInvalid(t *testing.T) {
	app, sim, rec := newTestApp(t, win11)

	if _, err := app.ApplyEffect("frosted", "dark"); err == nil {
		t.Error("expected error for unknown effect")
	}
	if _, err := app.ApplyEffect("mica", "sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
	if _, err := app.ClearEffect("frosted"); err == nil {
		t.Error("expected error for unknown effect")
	}
	if len(sim.Calls()) != 0 || len(rec.events) != 0 {
		t.Errorf("invalid requests reached the system: calls=%v events=%v", sim.Calls(), rec.events)
	}
}

func TestClearEffect(t *testing.T) {
	app, sim, rec := newTestApp(t, win11)

	if _, err := app.ApplyEffect("acrylic", "light"); err != nil {
		t.Fatal(err)
	}
	sim.Reset()

	ev, err := app.ClearEffect("acrylic")
	if err != nil {
		t.Fatal(err)
	}
	if !ev.Cleared || ev.Effect != "acrylic" {
		t.Errorf("unexpected event %+v", ev)
	}
	calls := sim.Calls()
	if len(calls) != 1 || calls[0].Value != uint32(backdrop.BackdropNone) {
		t.Errorf("calls = %v", calls)
	}
	if len(rec.events) != 2 || rec.events[0].ID == rec.events[1].ID {
		t.Errorf("events = %+v", rec.events)
	}

	// Nothing is current any more, so a theme change does nothing.
	sim.Reset()
	app.ThemeChanged()
	if len(sim.Calls()) != 0 {
		t.Errorf("theme change after clear issued %v", sim.Calls())
	}
}

func TestThemeChangedReappliesAutoOnly(t *testing.T) {
	app, sim, rec := newTestApp(t, win11)

	if _, err := app.ApplyEffect("tabbed", "auto"); err != nil {
		t.Fatal(err)
	}
	sim.Reset()
	app.ThemeChanged()
	if got := len(sim.Calls()); got != 2 {
		t.Errorf("auto theme: reapply issued %d calls, want 2", got)
	}
	if len(rec.events) != 2 {
		t.Errorf("events = %d, want 2", len(rec.events))
	}

	if _, err := app.ApplyEffect("tabbed", "dark"); err != nil {
		t.Fatal(err)
	}
	sim.Reset()
	app.ThemeChanged()
	if len(sim.Calls()) != 0 {
		t.Errorf("explicit theme was overridden by a system theme change: %v", sim.Calls())
	}
}

func TestThemeChangedIsDebounced(t *testing.T) {
	app, sim, _ := newTestApp(t, win11)

	var pending func()
	app.debounced = func(f func()) { pending = f }

	if _, err := app.ApplyEffect("mica", "auto"); err != nil {
		t.Fatal(err)
	}
	sim.Reset()

	for i := 0; i < 5; i++ {
		app.ThemeChanged()
	}
	if len(sim.Calls()) != 0 {
		t.Fatalf("reapplied before the debounce fired: %v", sim.Calls())
	}

	pending()
	if got := len(sim.Calls()); got != 2 {
		t.Errorf("debounced reapply issued %d calls, want 2", got)
	}
}

func TestApplyEffectUnsupportedStillEmits(t *testing.T) {
	app, sim, rec := newTestApp(t, winver.Version{Major: 10, Minor: 0, Build: 19045})

	ev, err := app.ApplyEffect("mica", "dark")
	if err != nil {
		t.Fatal(err)
	}
	if ev.Mechanism != string(backdrop.MechanismUnsupported) {
		t.Errorf("mechanism = %q", ev.Mechanism)
	}
	if len(sim.Calls()) != 0 {
		t.Errorf("unsupported effect issued calls: %v", sim.Calls())
	}
	if len(rec.events) != 1 {
		t.Errorf("events = %v", rec.events)
	}
}
