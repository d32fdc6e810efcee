// Package window locates the native window a backdrop is applied to.
package window

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

var (
	// ErrNotFound is returned when no top-level window has the requested title.
	ErrNotFound = errors.New("window not found")

	// ErrNotSupported is returned by FindByTitle off Windows.
	ErrNotSupported = errors.New("window lookup requires Windows")
)

// ParseHandle parses a window handle written in decimal or as 0x-prefixed hex.
// Zero is rejected.
func ParseHandle(s string) (backdrop.HWND, error) {
	digits := strings.TrimSpace(s)
	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(digits), "0x"); ok {
		digits, base = rest, 16
	}

	// Handles are pointer sized.
	n, err := strconv.ParseUint(digits, base, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid window handle: must be non-zero")
	}
	return backdrop.HWND(n), nil
}
