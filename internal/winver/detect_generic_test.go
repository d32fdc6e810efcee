//go:build !windows

package winver_test

import (
	"testing"

	"github.com/yourusername/window-backdrop/internal/winver"
)

func TestDetectUnknownOffWindows(t *testing.T) {
	v, ok := winver.Detect()
	if ok {
		t.Fatalf("Detect reported %s on a non-Windows platform", v)
	}
	if !v.IsZero() {
		t.Errorf("Detect returned non-zero version %s alongside false", v)
	}
}
