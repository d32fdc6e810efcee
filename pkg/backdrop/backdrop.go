// Package backdrop applies translucent backdrop effects (blur, acrylic, Mica
// and tabbed) to native Windows windows.
//
// Every operation detects the running Windows build and picks one of three
// mechanisms: the documented DwmEnableBlurBehindWindow call (Windows 7), the
// undocumented user32 SetWindowCompositionAttribute accent policy (Windows 10
// 1809 through early Windows 11), or the documented DWMWA_SYSTEMBACKDROP_TYPE
// window attribute (Windows 11 build 22523 and later).
//
// Effects are best effort. No operation returns an error or panics because
// the OS refused a request; the worst outcome is a window that looks plainer
// than asked. Requests that the running release cannot satisfy at all log a
// single warning.
package backdrop

import (
	"errors"
	"fmt"

	"github.com/yourusername/window-backdrop/internal/winver"
)

// HWND is a native window handle.
type HWND uintptr

// AccentState selects the effect drawn by the accent policy attribute.
type AccentState uint32

const (
	AccentDisabled                AccentState = 0
	AccentEnableBlurBehind        AccentState = 3
	AccentEnableAcrylicBlurBehind AccentState = 4
)

// accentFlagGradientColor tells the compositor to tint with GradientColor.
const accentFlagGradientColor = 2

// accentGradientColor is the tint used with the accent policy: 0xAABBGGRR
// with R=G=B=0x1F and alpha 0.
const accentGradientColor = 0x1F | 0x1F<<8 | 0x1F<<16 | 0<<24

// WindowAttribute identifies a DWMWINDOWATTRIBUTE value, or a composition
// attribute for the accent policy call.
type WindowAttribute uint32

const (
	// AttrAccentPolicy is WCA_ACCENT_POLICY, the composition attribute used
	// with SetWindowCompositionAttribute.
	AttrAccentPolicy WindowAttribute = 0x13

	// AttrUseImmersiveDarkMode is DWMWA_USE_IMMERSIVE_DARK_MODE.
	AttrUseImmersiveDarkMode WindowAttribute = 20

	// AttrSystemBackdropType is DWMWA_SYSTEMBACKDROP_TYPE (build 22523+).
	AttrSystemBackdropType WindowAttribute = 38

	// AttrMicaEffect is the undocumented Mica switch honoured by Windows 11
	// builds before 22523.
	AttrMicaEffect WindowAttribute = 1029
)

// BackdropType is a DWM_SYSTEMBACKDROP_TYPE value.
type BackdropType uint32

const (
	BackdropAuto            BackdropType = 0
	BackdropNone            BackdropType = 1
	BackdropMainWindow      BackdropType = 2 // Mica
	BackdropTransientWindow BackdropType = 3 // Acrylic
	BackdropTabbedWindow    BackdropType = 4 // Tabbed
)

// AccentPolicy mirrors the ACCENT_POLICY record passed to
// SetWindowCompositionAttribute. Field order and sizes are fixed.
type AccentPolicy struct {
	State         AccentState
	Flags         uint32
	GradientColor uint32
	AnimationID   uint32
}

// newAccentPolicy returns the policy used for every accent request.
func newAccentPolicy(state AccentState) AccentPolicy {
	return AccentPolicy{
		State:         state,
		Flags:         accentFlagGradientColor,
		GradientColor: accentGradientColor,
		AnimationID:   0,
	}
}

var (
	// ErrProcNotFound is returned by a System when a dynamically resolved
	// export is missing. It is expected on releases without the API.
	ErrProcNotFound = errors.New("procedure not found")

	// ErrUnsupportedPlatform is returned by the native System on non-Windows builds.
	ErrUnsupportedPlatform = errors.New("backdrop effects require Windows")
)

// HRESULTError reports a failed DWM call.
type HRESULTError struct {
	Func string
	Code uint32
}

func (e *HRESULTError) Error() string {
	return fmt.Sprintf("%s failed: HRESULT=0x%08X", e.Func, e.Code)
}

// hresult converts a raw HRESULT into an error; success codes yield nil.
func hresult(fn string, hr uintptr) error {
	if int32(hr) >= 0 {
		return nil
	}
	return &HRESULTError{Func: fn, Code: uint32(hr)}
}

// System is the set of OS calls an Applier issues. NativeSystem talks to
// Windows; Simulator records calls instead.
type System interface {
	// Version reports the running OS version, or false if it is unknown.
	Version() (winver.Version, bool)

	// EnableBlurBehind calls DwmEnableBlurBehindWindow with DWM_BB_ENABLE
	// and an empty region.
	EnableBlurBehind(hwnd HWND, enable bool) error

	// SetWindowAttribute calls DwmSetWindowAttribute with a 32-bit value.
	SetWindowAttribute(hwnd HWND, attr WindowAttribute, value uint32) error

	// SetAccentPolicy resolves user32!SetWindowCompositionAttribute and
	// calls it with WCA_ACCENT_POLICY. It returns ErrProcNotFound when the
	// export cannot be resolved.
	SetAccentPolicy(hwnd HWND, policy AccentPolicy) error
}
