//go:build !windows

package theme

// IsDark always reports light off Windows.
func IsDark() bool {
	return false
}
