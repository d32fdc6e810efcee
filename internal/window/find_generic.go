//go:build !windows

package window

import "github.com/yourusername/window-backdrop/pkg/backdrop"

// FindByTitle is not available off Windows.
func FindByTitle(string) (backdrop.HWND, error) {
	return 0, ErrNotSupported
}
