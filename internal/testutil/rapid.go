package testutil

import (
	"flag"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/yourusername/window-backdrop/internal/winver"
	"pgregory.net/rapid"
)

// rapidChecksFlag is the flag rapid reads its iteration count from.
const rapidChecksFlag = "rapid.checks"

var (
	rapidChecksOnce    sync.Once
	rapidChecksUserSet bool
)

// rapidChecksFromCommandLine reports whether -rapid.checks was given to the
// test binary. It is evaluated once, before this package sets the flag.
func rapidChecksFromCommandLine() bool {
	rapidChecksOnce.Do(func() {
		flag.Visit(func(f *flag.Flag) {
			if f.Name == rapidChecksFlag {
				rapidChecksUserSet = true
			}
		})
	})
	return rapidChecksUserSet
}

// GetRapidCheckConfig sets rapid's iteration count for the current intensity
// for the rest of t. An explicit -rapid.checks on the command line wins.
func GetRapidCheckConfig(t *testing.T) {
	config := GetTestConfig()

	if rapidChecksFromCommandLine() {
		if config.VerboseOutput {
			t.Logf("Using -%s from the command line", rapidChecksFlag)
		}
		return
	}

	f := flag.Lookup(rapidChecksFlag)
	if f == nil {
		t.Fatalf("rapid did not register -%s", rapidChecksFlag)
	}
	prev := f.Value.String()
	if err := flag.Set(rapidChecksFlag, strconv.Itoa(config.IterationCount)); err != nil {
		t.Fatalf("setting -%s: %v", rapidChecksFlag, err)
	}
	t.Cleanup(func() { _ = flag.Set(rapidChecksFlag, prev) })

	if config.VerboseOutput {
		t.Logf("Rapid property test configured with %d iterations (intensity: %s)",
			config.IterationCount, config.Intensity)
	}
}

// RapidCheck runs rapid.Check with the iteration count of the current
// intensity and warns when the test deadline is tighter than the preset.
func RapidCheck(t *testing.T, fn func(*rapid.T)) {
	t.Helper()

	config := GetTestConfig()
	GetRapidCheckConfig(t)

	if deadline, ok := t.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining < config.Timeout {
			t.Logf("WARNING: Remaining test time (%s) is less than configured timeout (%s)",
				remaining.Round(time.Second), config.Timeout)
		}
	} else if config.VerboseOutput {
		t.Logf("WARNING: No test deadline set. Run tests with -timeout flag for safety.")
	}

	rapid.Check(t, fn)

	if config.VerboseOutput {
		t.Logf("Property test completed successfully (%d iterations)", config.IterationCount)
	}
}

// RapidBuildGenerator draws build numbers in [lo, hi).
func RapidBuildGenerator(lo, hi uint32) *rapid.Generator[uint32] {
	if hi <= lo+1 {
		return rapid.Just(lo)
	}
	return rapid.Uint32Range(lo, hi-1)
}

// RapidVersionGenerator draws arbitrary version triples, biased towards the
// tier boundaries where classification changes.
func RapidVersionGenerator(config TestConfig) *rapid.Generator[winver.Version] {
	boundaries := []uint32{
		0,
		winver.BuildWindows10October2018Update - 1,
		winver.BuildWindows10October2018Update,
		winver.BuildWindows11 - 1,
		winver.BuildWindows11,
		winver.BuildSystemBackdrop - 1,
		winver.BuildSystemBackdrop,
	}

	return rapid.Custom(func(t *rapid.T) winver.Version {
		var build uint32
		if rapid.Bool().Draw(t, "atBoundary") {
			build = rapid.SampledFrom(boundaries).Draw(t, "boundaryBuild")
		} else {
			build = rapid.Uint32Range(0, config.MaxBuild).Draw(t, "build")
		}
		return winver.Version{
			Major: rapid.SampledFrom([]uint32{0, 5, 6, 10}).Draw(t, "major"),
			Minor: rapid.Uint32Range(0, 3).Draw(t, "minor"),
			Build: build,
		}
	})
}

// RapidVersionInRange draws versions with major 10, minor 0 and a build in [lo, hi).
func RapidVersionInRange(lo, hi uint32) *rapid.Generator[winver.Version] {
	return rapid.Custom(func(t *rapid.T) winver.Version {
		return winver.Version{
			Major: 10,
			Minor: 0,
			Build: RapidBuildGenerator(lo, hi).Draw(t, "build"),
		}
	})
}
