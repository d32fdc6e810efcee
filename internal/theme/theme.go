// Package theme resolves the title bar theme requested by the user.
package theme

import "strings"

// Theme modes accepted in configuration and on the command line.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// ValidMode reports whether mode is one of auto, dark or light.
func ValidMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeAuto, ModeDark, ModeLight:
		return true
	}
	return false
}

// Resolve maps a mode to a dark flag. auto, and anything unrecognised,
// follows the system app theme.
func Resolve(mode string) bool {
	return resolve(mode, IsDark)
}

func resolve(mode string, systemDark func() bool) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeDark:
		return true
	case ModeLight:
		return false
	default:
		return systemDark()
	}
}
