// Package winver detects the running Windows version and classifies it into
// the capability tiers that decide which backdrop mechanism a window can use.
//
// Detection bypasses the compatibility shims that make GetVersionEx lie to
// unmanifested processes, so the reported build is the real one.
package winver

import (
	"fmt"
	"strconv"
	"strings"
)

// Build thresholds. These are fixed by the OS and must not be adjusted.
const (
	// BuildWindows10October2018Update is Windows 10 version 1809, the first
	// build where the acrylic accent state renders reliably.
	BuildWindows10October2018Update = 17763

	// BuildWindows11 is the first Windows 11 build (21H2).
	BuildWindows11 = 22000

	// BuildSystemBackdrop is the first Windows 11 build that accepts
	// DWMWA_SYSTEMBACKDROP_TYPE.
	BuildSystemBackdrop = 22523
)

// Version is the (major, minor, build) triple reported by the OS.
// The zero value stands for "unknown" and matches no capability tier.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

// String returns the version as "major.minor.build".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// IsZero reports whether v is the unknown version.
func (v Version) IsZero() bool {
	return v == Version{}
}

// IsWindows7 reports whether v is Windows 7 (NT 6.1).
// Windows 7 only offers blur through DwmEnableBlurBehindWindow.
func (v Version) IsWindows7() bool {
	return v.Major == 6 && v.Minor == 1
}

// IsSupportedWindows10 reports whether v is Windows 10 1809 or later but
// older than Windows 11.
func (v Version) IsSupportedWindows10() bool {
	return v.Build >= BuildWindows10October2018Update && v.Build < BuildWindows11
}

// IsWindows11 reports whether v is any Windows 11 release.
func (v Version) IsWindows11() bool {
	return v.Build >= BuildWindows11
}

// SupportsSystemBackdrop reports whether v understands the documented
// system backdrop type attribute.
func (v Version) SupportsSystemBackdrop() bool {
	return v.Build >= BuildSystemBackdrop
}

// Parse parses a "major.minor.build" string such as "10.0.22621".
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor.build", s)
	}

	var nums [3]uint32
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		nums[i] = uint32(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Build: nums[2]}, nil
}
