package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourusername/window-backdrop/internal/theme"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
	"pgregory.net/rapid"
)

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Effect != "mica" || cfg.Theme != theme.ModeAuto {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `effect: acrylic
theme: Dark
window_title: Untitled - Notepad
verbose: true
log_file: C:\logs\backdrop.log
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	want := Config{
		Effect:      "acrylic",
		Theme:       "dark",
		WindowTitle: "Untitled - Notepad",
		Verbose:     true,
		LogFile:     `C:\logs\backdrop.log`,
	}
	if *cfg != want {
		t.Errorf("got %+v, want %+v", *cfg, want)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed on empty input: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty document should give defaults, got %+v", cfg)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"unknown effect": "effect: glass\n",
		"unknown theme":  "theme: sepia\n",
		"unknown key":    "effects: mica\n",
		"bad yaml":       "effect: [mica\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(doc)); err == nil {
				t.Errorf("expected error for %q", doc)
			}
		})
	}
}

func TestLoadFromPathReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("effect: nope\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("expected error mentioning %s, got %v", path, err)
	}
}

// TestParseAcceptsEveryEffect checks each effect and theme combination round-trips.
func TestParseAcceptsEveryEffect(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := rapid.SampledFrom(backdrop.Effects()).Draw(rt, "effect")
		mode := rapid.SampledFrom([]string{theme.ModeAuto, theme.ModeDark, theme.ModeLight}).Draw(rt, "theme")

		cfg, err := Parse(strings.NewReader("effect: " + e.String() + "\ntheme: " + mode + "\n"))
		if err != nil {
			rt.Fatalf("Parse failed: %v", err)
		}
		if cfg.Effect != e.String() || cfg.Theme != mode {
			rt.Fatalf("got %+v", cfg)
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(filepath.ToSlash(path), relativeConfigPath) {
		t.Errorf("unexpected config path %s", path)
	}
}
