// Package main provides the command-line interface for window-backdrop. It
// applies or clears blur, acrylic, Mica and tabbed backdrops on a window, and
// can show which mechanism each effect would use on a given Windows build.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/yourusername/window-backdrop/internal/config"
	"github.com/yourusername/window-backdrop/internal/logger"
	"github.com/yourusername/window-backdrop/internal/theme"
	"github.com/yourusername/window-backdrop/internal/window"
	"github.com/yourusername/window-backdrop/internal/winver"
	"github.com/yourusername/window-backdrop/pkg/backdrop"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// planHWND stands in for a window in --plan mode when none was given.
const planHWND backdrop.HWND = 0x1

// Options holds the merged configuration file and command-line settings.
type Options struct {
	config.Config

	HWND          string
	Clear         bool
	Info          bool
	Plan          bool
	AssumeVersion string
	ConfigPath    string
}

func main() {
	opts, err := parseArguments()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(exitUsage)
	}

	if opts == nil {
		printUsage()
		os.Exit(exitOK)
	}

	os.Exit(run(opts, os.Stdout))
}

// parseArguments parses flags over the configuration file and validates
// the result. It returns a nil Options, and no error, when no arguments were
// given.
func parseArguments() (*Options, error) {
	effect := flag.String("effect", "", "Effect to apply: blur, acrylic, mica, tabbed")
	flag.StringVar(effect, "e", "", "Effect to apply (shorthand)")
	themeMode := flag.String("theme", "", "Title bar theme for mica and tabbed: auto, dark, light")
	hwnd := flag.String("hwnd", "", "Window handle (decimal or 0x hex)")
	title := flag.String("title", "", "Exact title of the target window")
	flag.StringVar(title, "t", "", "Exact title of the target window (shorthand)")
	clear := flag.Bool("clear", false, "Remove the effect instead of applying it")
	info := flag.Bool("info", false, "Show the detected Windows version and how each effect is applied")
	plan := flag.Bool("plan", false, "Print the OS calls that would be made instead of making them")
	assumeVersion := flag.String("assume-version", "", "Windows version to assume with --plan or --info (major.minor.build)")
	configPath := flag.String("config", "", "Configuration file (default: "+config.DefaultConfigPath()+")")
	verbose := flag.Bool("verbose", false, "Enable detailed logging")
	logFile := flag.String("log-file", "", "Write logs to specified file")

	flag.Usage = printUsage
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, err
	}

	if flag.NFlag() == 0 && flag.NArg() == 0 {
		return nil, nil
	}
	if flag.NArg() > 0 {
		return nil, fmt.Errorf("unexpected positional arguments: %v\n"+
			"   All options must be specified as flags", flag.Args())
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	// Flags that were set override the file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["effect"] || set["e"] {
		cfg.Effect = *effect
	}
	if set["theme"] {
		cfg.Theme = *themeMode
	}
	if set["title"] || set["t"] {
		cfg.WindowTitle = *title
	}
	if set["verbose"] {
		cfg.Verbose = *verbose
	}
	if set["log-file"] {
		cfg.LogFile = *logFile
	}

	opts := &Options{
		Config:        *cfg,
		HWND:          *hwnd,
		Clear:         *clear,
		Info:          *info,
		Plan:          *plan,
		AssumeVersion: *assumeVersion,
		ConfigPath:    *configPath,
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// validateOptions checks flag combinations that parsing alone cannot.
func validateOptions(opts *Options) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	if opts.AssumeVersion != "" {
		if !opts.Plan && !opts.Info {
			return fmt.Errorf("--assume-version requires --plan or --info")
		}
		if _, err := winver.Parse(opts.AssumeVersion); err != nil {
			return err
		}
	}
	if opts.HWND != "" {
		if _, err := window.ParseHandle(opts.HWND); err != nil {
			return err
		}
	}
	if !opts.Info && !opts.Plan && opts.HWND == "" && opts.WindowTitle == "" {
		return fmt.Errorf("a target window is required\n" +
			"   Use --hwnd or --title, or set window_title in the configuration file")
	}
	return nil
}

// run executes the requested action and returns the process exit code.
func run(opts *Options, stdout io.Writer) int {
	if err := logger.SetupLogging(opts.Verbose, opts.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer logger.Close()

	effect, _ := backdrop.ParseEffect(opts.Effect)

	if opts.Info {
		v, known := targetVersion(opts)
		printInfo(stdout, v, known)
		if !opts.Plan && opts.HWND == "" && opts.WindowTitle == "" {
			return exitOK
		}
	}

	if opts.Plan {
		v, known := targetVersion(opts)
		sim := &backdrop.Simulator{Ver: v, Known: known}
		hwnd := planHWND
		if opts.HWND != "" {
			hwnd, _ = window.ParseHandle(opts.HWND)
		}
		apply(backdrop.NewApplier(sim), hwnd, effect, opts)
		printPlan(stdout, sim.Calls())
		return exitOK
	}

	hwnd, err := resolveWindow(opts)
	if err != nil {
		logger.Error("%v", err)
		return exitFailure
	}

	apply(backdrop.NewApplier(backdrop.NativeSystem()), hwnd, effect, opts)
	return exitOK
}

// apply applies or clears effect on hwnd through a.
func apply(a *backdrop.Applier, hwnd backdrop.HWND, effect backdrop.Effect, opts *Options) {
	if opts.Clear {
		logger.Debug("Clearing %s on window %#x", effect, uintptr(hwnd))
		_ = a.Clear(hwnd, effect)
		return
	}

	dark := theme.Resolve(opts.Theme)
	logger.Debug("Applying %s on window %#x (dark=%v)", effect, uintptr(hwnd), dark)
	_ = a.Apply(hwnd, effect, dark)
}

// targetVersion returns the assumed version if one was given, otherwise the
// detected one.
func targetVersion(opts *Options) (winver.Version, bool) {
	if opts.AssumeVersion != "" {
		v, err := winver.Parse(opts.AssumeVersion)
		return v, err == nil
	}
	return winver.Detect()
}

// resolveWindow finds the target window from --hwnd or the title.
func resolveWindow(opts *Options) (backdrop.HWND, error) {
	if opts.HWND != "" {
		return window.ParseHandle(opts.HWND)
	}
	return window.FindByTitle(opts.WindowTitle)
}

func printInfo(w io.Writer, v winver.Version, known bool) {
	if known {
		fmt.Fprintf(w, "Windows version: %s\n", v)
	} else {
		fmt.Fprintf(w, "Windows version: unknown (assuming %s)\n", v)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EFFECT\tMECHANISM")
	for _, r := range backdrop.Routes(v) {
		fmt.Fprintf(tw, "%s\t%s\n", r.Effect, r.Mechanism)
	}
	tw.Flush()
}

func printPlan(w io.Writer, calls []backdrop.Call) {
	if len(calls) == 0 {
		fmt.Fprintln(w, "No OS calls would be made.")
		return
	}
	for i, c := range calls {
		fmt.Fprintf(w, "%d. %s\n", i+1, c)
	}
}

// printUsage displays usage information.
func printUsage() {
	fmt.Fprintf(os.Stderr, `window-backdrop - apply translucent backdrops to Windows windows

Usage:
  window-backdrop --title <title> [--effect <effect>] [options]
  window-backdrop --hwnd <handle> [--effect <effect>] [options]
  window-backdrop --info [--assume-version <version>]
  window-backdrop --plan [--effect <effect>] [--assume-version <version>]

Options:
  -e, --effect <name>         blur, acrylic, mica or tabbed (default from config, else mica)
      --theme <mode>          auto, dark or light title bar for mica and tabbed
      --hwnd <handle>         Window handle, decimal or 0x hex
  -t, --title <title>         Exact title of the target window
      --clear                 Remove the effect instead of applying it
      --info                  Show the Windows version and the mechanism per effect
      --plan                  Print the OS calls instead of making them
      --assume-version <v>    Version to assume with --plan or --info, e.g. 10.0.22621
      --config <path>         Configuration file
      --verbose               Enable detailed logging
      --log-file <path>       Write logs to the specified file

Notes:
  Effects are best effort. Unsupported Windows releases print a warning and
  leave the window unchanged. Windows owned by other processes usually
  ignore backdrop requests.
`)
}
