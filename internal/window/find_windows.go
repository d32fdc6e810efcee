//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/window-backdrop/internal/logger"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW = user32.NewProc("FindWindowW")
)

// FindByTitle returns the first top-level window whose title is exactly title.
func FindByTitle(title string) (backdrop.HWND, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("failed to convert title to UTF-16: %w", err)
	}

	hwnd, _, callErr := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		logger.Debug("FindWindowW found no window titled %q (%v)", title, callErr)
		return 0, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	return backdrop.HWND(hwnd), nil
}
