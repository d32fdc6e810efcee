//go:build windows

package winver_test

import (
	"testing"

	"github.com/yourusername/window-backdrop/internal/winver"
)

// TestDetect verifies that RtlGetVersion resolves and reports a plausible version.
func TestDetect(t *testing.T) {
	v, ok := winver.Detect()
	if !ok {
		t.Fatal("Detect failed on Windows")
	}

	t.Logf("Detected Windows version: %s", v)

	if v.Major < 6 {
		t.Errorf("implausible major version %d", v.Major)
	}
	if v.Build == 0 {
		t.Error("build number is 0")
	}
}

// TestDetectIsNotCached checks that repeated detection agrees; each call
// re-resolves the export.
func TestDetectIsNotCached(t *testing.T) {
	first, ok1 := winver.Detect()
	second, ok2 := winver.Detect()
	if ok1 != ok2 || first != second {
		t.Errorf("Detect disagreed with itself: %s/%v vs %s/%v", first, ok1, second, ok2)
	}
}
