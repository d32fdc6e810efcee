package backdrop

import (
	"errors"
	"fmt"

	"github.com/yourusername/window-backdrop/internal/logger"
	"github.com/yourusername/window-backdrop/internal/winver"
)

// Diagnostics printed when the running release cannot render a request.
const (
	msgAcrylicUnsupported      = "ApplyAcrylic is only available on Windows 10 v1809 or newer"
	msgMicaUnsupported         = "ApplyMica is only available on Windows 11"
	msgTabbedUnsupported       = "ApplyTabbed is only available on Windows 11 build 22523 or newer"
	msgClearAcrylicUnsupported = "ClearAcrylic is only available on Windows 10 v1809 or newer"
	msgClearMicaUnsupported    = "ClearMica is only available on Windows 11"
	msgClearTabbedUnsupported  = "ClearTabbed is only available on Windows 11 build 22523 or newer"
)

// Applier applies effects through a System. It keeps no state between
// calls: each operation queries the version afresh.
type Applier struct {
	sys   System
	warnf func(format string, args ...any)
}

// NewApplier returns an Applier that issues its calls through sys.
func NewApplier(sys System) *Applier {
	return &Applier{sys: sys, warnf: logger.Warning}
}

// version returns the running version, or the zero Version when unknown.
func (a *Applier) version() winver.Version {
	v, ok := a.sys.Version()
	if !ok {
		logger.Debug("Windows version unknown, assuming the oldest behaviour")
		return winver.Version{}
	}
	return v
}

// ApplyBlur enables blur behind hwnd.
func (a *Applier) ApplyBlur(hwnd HWND) {
	if RouteFor(a.version(), EffectBlur) == MechanismBlurBehind {
		a.ignore(a.sys.EnableBlurBehind(hwnd, true))
		return
	}
	a.setAccent(hwnd, AccentEnableBlurBehind)
}

// ClearBlur reverts ApplyBlur.
func (a *Applier) ClearBlur(hwnd HWND) {
	if RouteFor(a.version(), EffectBlur) == MechanismBlurBehind {
		a.ignore(a.sys.EnableBlurBehind(hwnd, false))
		return
	}
	a.setAccent(hwnd, AccentDisabled)
}

// ApplyAcrylic applies the acrylic material to hwnd. It requires Windows 10
// 1809 or newer; older releases get a warning and no change.
func (a *Applier) ApplyAcrylic(hwnd HWND) {
	switch RouteFor(a.version(), EffectAcrylic) {
	case MechanismSystemBackdrop:
		a.setBackdropType(hwnd, BackdropTransientWindow)
	case MechanismCompositionAttribute:
		a.setAccent(hwnd, AccentEnableAcrylicBlurBehind)
	default:
		a.warnf(msgAcrylicUnsupported)
	}
}

// ClearAcrylic reverts ApplyAcrylic.
func (a *Applier) ClearAcrylic(hwnd HWND) {
	switch RouteFor(a.version(), EffectAcrylic) {
	case MechanismSystemBackdrop:
		a.setBackdropType(hwnd, BackdropNone)
	case MechanismCompositionAttribute:
		a.setAccent(hwnd, AccentDisabled)
	default:
		a.warnf(msgClearAcrylicUnsupported)
	}
}

// ApplyMica applies Mica to hwnd and sets the title bar to dark or light.
// It requires Windows 11; older releases get a warning and no change.
//
// The title bar theme is always set before the backdrop. If the backdrop
// call fails after the theme succeeded, the window keeps the new theme.
func (a *Applier) ApplyMica(hwnd HWND, dark bool) {
	switch RouteFor(a.version(), EffectMica) {
	case MechanismSystemBackdrop:
		a.setDarkMode(hwnd, dark)
		a.setBackdropType(hwnd, BackdropMainWindow)
	case MechanismLegacyMica:
		a.setDarkMode(hwnd, dark)
		a.setAttribute(hwnd, AttrMicaEffect, 1)
	default:
		a.warnf(msgMicaUnsupported)
	}
}

// ClearMica reverts ApplyMica's backdrop. The title bar theme is left alone.
func (a *Applier) ClearMica(hwnd HWND) {
	switch RouteFor(a.version(), EffectMica) {
	case MechanismSystemBackdrop:
		a.setBackdropType(hwnd, BackdropNone)
	case MechanismLegacyMica:
		a.setAttribute(hwnd, AttrMicaEffect, 0)
	default:
		a.warnf(msgClearMicaUnsupported)
	}
}

// ApplyTabbed applies the tabbed-window material and sets the title bar
// theme. It requires a build with the system backdrop attribute.
func (a *Applier) ApplyTabbed(hwnd HWND, dark bool) {
	if RouteFor(a.version(), EffectTabbed) != MechanismSystemBackdrop {
		a.warnf(msgTabbedUnsupported)
		return
	}
	a.setDarkMode(hwnd, dark)
	a.setBackdropType(hwnd, BackdropTabbedWindow)
}

// ClearTabbed reverts ApplyTabbed's backdrop.
func (a *Applier) ClearTabbed(hwnd HWND) {
	if RouteFor(a.version(), EffectTabbed) != MechanismSystemBackdrop {
		a.warnf(msgClearTabbedUnsupported)
		return
	}
	a.setBackdropType(hwnd, BackdropNone)
}

// Apply dispatches to the Apply method for e. dark is ignored by effects
// without a title bar theme. Only an unknown effect is reported as an error.
func (a *Applier) Apply(hwnd HWND, e Effect, dark bool) error {
	switch e {
	case EffectBlur:
		a.ApplyBlur(hwnd)
	case EffectAcrylic:
		a.ApplyAcrylic(hwnd)
	case EffectMica:
		a.ApplyMica(hwnd, dark)
	case EffectTabbed:
		a.ApplyTabbed(hwnd, dark)
	default:
		return fmt.Errorf("unknown effect %d", int(e))
	}
	return nil
}

// Clear dispatches to the Clear method for e.
func (a *Applier) Clear(hwnd HWND, e Effect) error {
	switch e {
	case EffectBlur:
		a.ClearBlur(hwnd)
	case EffectAcrylic:
		a.ClearAcrylic(hwnd)
	case EffectMica:
		a.ClearMica(hwnd)
	case EffectTabbed:
		a.ClearTabbed(hwnd)
	default:
		return fmt.Errorf("unknown effect %d", int(e))
	}
	return nil
}

func (a *Applier) setDarkMode(hwnd HWND, dark bool) {
	var value uint32
	if dark {
		value = 1
	}
	a.setAttribute(hwnd, AttrUseImmersiveDarkMode, value)
}

func (a *Applier) setBackdropType(hwnd HWND, t BackdropType) {
	a.setAttribute(hwnd, AttrSystemBackdropType, uint32(t))
}

func (a *Applier) setAttribute(hwnd HWND, attr WindowAttribute, value uint32) {
	a.ignore(a.sys.SetWindowAttribute(hwnd, attr, value))
}

// setAccent issues the accent policy call. A missing export is normal on
// releases without the API and is not logged.
func (a *Applier) setAccent(hwnd HWND, state AccentState) {
	err := a.sys.SetAccentPolicy(hwnd, newAccentPolicy(state))
	if errors.Is(err, ErrProcNotFound) {
		return
	}
	a.ignore(err)
}

// ignore drops a failed OS call after logging it at DEBUG level.
func (a *Applier) ignore(err error) {
	if err != nil {
		logger.Debug("backdrop call ignored: %v", err)
	}
}
