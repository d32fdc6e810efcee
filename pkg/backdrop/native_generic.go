//go:build !windows

package backdrop

import "github.com/yourusername/window-backdrop/internal/winver"

type nativeSystem struct{}

// NativeSystem returns an inert System on non-Windows platforms: the version
// is unknown and every call fails with ErrUnsupportedPlatform.
func NativeSystem() System {
	return nativeSystem{}
}

func (nativeSystem) Version() (winver.Version, bool) {
	return winver.Detect()
}

func (nativeSystem) EnableBlurBehind(HWND, bool) error {
	return ErrUnsupportedPlatform
}

func (nativeSystem) SetWindowAttribute(HWND, WindowAttribute, uint32) error {
	return ErrUnsupportedPlatform
}

func (nativeSystem) SetAccentPolicy(HWND, AccentPolicy) error {
	return ErrUnsupportedPlatform
}
