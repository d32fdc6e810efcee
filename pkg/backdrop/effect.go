package backdrop

import (
	"fmt"
	"strings"

	"github.com/yourusername/window-backdrop/internal/winver"
)

// Effect names a backdrop material.
type Effect int

const (
	EffectBlur Effect = iota
	EffectAcrylic
	EffectMica
	EffectTabbed
)

// Effects lists every effect in declaration order.
func Effects() []Effect {
	return []Effect{EffectBlur, EffectAcrylic, EffectMica, EffectTabbed}
}

// String returns the lowercase effect name.
func (e Effect) String() string {
	switch e {
	case EffectBlur:
		return "blur"
	case EffectAcrylic:
		return "acrylic"
	case EffectMica:
		return "mica"
	case EffectTabbed:
		return "tabbed"
	default:
		return "unknown"
	}
}

// ParseEffect parses an effect name, ignoring case and surrounding space.
func ParseEffect(s string) (Effect, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, e := range Effects() {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q (want blur, acrylic, mica or tabbed)", s)
}

// Mechanism names the OS facility used to render an effect.
type Mechanism string

const (
	MechanismBlurBehind           Mechanism = "dwm-blur-behind"
	MechanismCompositionAttribute Mechanism = "composition-attribute"
	MechanismSystemBackdrop       Mechanism = "system-backdrop"
	MechanismLegacyMica           Mechanism = "legacy-mica"
	MechanismUnsupported          Mechanism = "unsupported"
)

// Route pairs an effect with the mechanism a version uses for it.
type Route struct {
	Effect    Effect
	Mechanism Mechanism
}

// RouteFor returns the mechanism used to apply e on v. It is a pure
// function of its arguments.
func RouteFor(v winver.Version, e Effect) Mechanism {
	switch e {
	case EffectBlur:
		if v.IsWindows7() {
			return MechanismBlurBehind
		}
		return MechanismCompositionAttribute

	case EffectAcrylic:
		switch {
		case v.SupportsSystemBackdrop():
			return MechanismSystemBackdrop
		case v.IsSupportedWindows10(), v.IsWindows11():
			return MechanismCompositionAttribute
		}

	case EffectMica:
		switch {
		case v.SupportsSystemBackdrop():
			return MechanismSystemBackdrop
		case v.IsWindows11():
			return MechanismLegacyMica
		}

	case EffectTabbed:
		if v.SupportsSystemBackdrop() {
			return MechanismSystemBackdrop
		}
	}

	return MechanismUnsupported
}

// Routes returns the route of every effect on v.
func Routes(v winver.Version) []Route {
	effects := Effects()
	routes := make([]Route, 0, len(effects))
	for _, e := range effects {
		routes = append(routes, Route{Effect: e, Mechanism: RouteFor(v, e)})
	}
	return routes
}
