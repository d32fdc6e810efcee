// Package testutil sizes property tests. TEST_INTENSITY picks how many cases
// rapid runs and how far the version generators reach.
package testutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// TestIntensity selects a preset from intensityPresets.
type TestIntensity int

const (
	IntensityQuick TestIntensity = iota
	IntensityThorough
)

func (ti TestIntensity) String() string {
	switch ti {
	case IntensityQuick:
		return "quick"
	case IntensityThorough:
		return "thorough"
	default:
		return "unknown"
	}
}

// TestConfig sizes one property test run.
type TestConfig struct {
	Intensity      TestIntensity
	IterationCount int

	// MaxBuild bounds the uniformly drawn builds. Tier boundaries are drawn
	// separately and may exceed it.
	MaxBuild uint32

	// Timeout is the run time a property test expects to need.
	Timeout time.Duration

	VerboseOutput bool
}

var intensityPresets = map[TestIntensity]TestConfig{
	IntensityQuick:    {IterationCount: 10, MaxBuild: 30000, Timeout: 30 * time.Second},
	IntensityThorough: {IterationCount: 100, MaxBuild: 100000, Timeout: 5 * time.Minute},
}

// GetTestConfig reads TEST_QUICK, TEST_INTENSITY and VERBOSE_TESTS. A true
// TEST_QUICK forces the quick preset; anything unrecognised is quick too.
func GetTestConfig() TestConfig {
	intensity := IntensityQuick
	if !ParseBool(os.Getenv("TEST_QUICK")) {
		intensity = ParseIntensity(os.Getenv("TEST_INTENSITY"))
	}

	config := intensityPresets[intensity]
	config.Intensity = intensity
	config.VerboseOutput = ParseBool(os.Getenv("VERBOSE_TESTS"))
	return config
}

// LogConfig prints config, for TestMain in verbose runs.
func LogConfig(config TestConfig) {
	fmt.Printf("Test Configuration: intensity=%s, iterations=%d, maxBuild=%d, timeout=%s, verbose=%v\n",
		config.Intensity, config.IterationCount, config.MaxBuild, config.Timeout, config.VerboseOutput)
}

// ParseIntensity maps "thorough" (any case) to IntensityThorough and
// everything else to IntensityQuick.
func ParseIntensity(s string) TestIntensity {
	if strings.EqualFold(strings.TrimSpace(s), "thorough") {
		return IntensityThorough
	}
	return IntensityQuick
}

// ParseBool accepts "true", "yes" and non-zero integers, ignoring case and
// surrounding space.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "true" || s == "yes" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n != 0
}
