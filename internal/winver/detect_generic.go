//go:build !windows

package winver

// Detect always reports an unknown version on non-Windows platforms.
func Detect() (Version, bool) {
	return Version{}, false
}
