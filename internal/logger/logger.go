// Package logger provides leveled logging for the backdrop tools. Console
// output goes to stderr through a colourised slog handler; an optional log
// file receives the same records as plain text.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// DEBUG level for detailed diagnostic information (verbose mode only)
	DEBUG LogLevel = iota
	// INFO level for general informational messages
	INFO
	// WARNING level for degraded but non-fatal outcomes
	WARNING
	// ERROR level for failures the caller should see
	ERROR
)

const timeFormat = "2006-01-02 15:04:05"

// Logger filters messages by level and forwards them to an slog handler.
type Logger struct {
	level      LogLevel
	fileWriter io.WriteCloser
	logger     *slog.Logger
}

var (
	// globalLogger is the singleton logger instance used throughout the application
	globalLogger *Logger
)

// SetupLogging initializes the global logger.
//
// Parameters:
//   - verbose: If true, enables DEBUG level logging (shows all messages)
//   - logFile: If non-empty, also appends logs to the specified file
//
// Returns an error if the log file cannot be created or opened.
func SetupLogging(verbose bool, logFile string) error {
	level := INFO
	if verbose {
		level = DEBUG
	}

	handlers := []slog.Handler{newConsoleHandler(os.Stderr)}

	var fileWriter io.WriteCloser
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		fileWriter = f
		handlers = append(handlers, newTextHandler(f))
	}

	// Replace any previous logger, releasing its file.
	_ = Close()

	globalLogger = &Logger{
		level:      level,
		fileWriter: fileWriter,
		logger:     slog.New(slogmulti.Fanout(handlers...)),
	}

	return nil
}

// SetOutput routes all log output to w as plain text. Used by hosts that
// capture diagnostics, and by tests.
func SetOutput(w io.Writer, verbose bool) {
	level := INFO
	if verbose {
		level = DEBUG
	}
	_ = Close()
	globalLogger = &Logger{
		level:  level,
		logger: slog.New(newTextHandler(w)),
	}
}

// Close closes the log file if one was opened. Safe to call more than once.
func Close() error {
	if globalLogger != nil && globalLogger.fileWriter != nil {
		err := globalLogger.fileWriter.Close()
		globalLogger.fileWriter = nil
		return err
	}
	return nil
}

// Debug logs a debug-level message (only shown in verbose mode).
func Debug(format string, args ...any) {
	logMessage(DEBUG, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logMessage(INFO, format, args...)
}

// Warning logs a warning message.
// Warnings report requests that were degraded to a no-op, such as an effect
// asked for on a Windows release that cannot render it.
func Warning(format string, args ...any) {
	logMessage(WARNING, format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logMessage(ERROR, format, args...)
}

// logMessage filters by level and formats the message.
// If the logger is not initialized, messages at INFO and above go to the
// standard logger on stderr.
func logMessage(level LogLevel, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	if globalLogger == nil {
		if level >= INFO {
			log.Printf("[%s] %s", levelToString(level), message)
		}
		return
	}

	if level < globalLogger.level {
		return
	}

	globalLogger.logger.Log(context.Background(), level.slogLevel(), message)
}

// slogLevel maps a LogLevel onto the slog level scale.
func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case WARNING:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelToString converts a LogLevel to its string representation.
func levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// newConsoleHandler returns a tint handler on w, coloured only when w is a terminal.
func newConsoleHandler(w *os.File) slog.Handler {
	noColor := !isatty.IsTerminal(w.Fd()) && !isatty.IsCygwinTerminal(w.Fd())
	return tint.NewHandler(colorable.NewColorable(w), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	})
}

// newTextHandler returns a plain text handler that spells levels the way
// levelToString does.
func newTextHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch {
			case len(groups) == 0 && a.Key == slog.TimeKey:
				return slog.String(slog.TimeKey, a.Value.Time().Format(timeFormat))
			case len(groups) == 0 && a.Key == slog.LevelKey:
				lvl, _ := a.Value.Any().(slog.Level)
				return slog.String(slog.LevelKey, levelToString(fromSlogLevel(lvl)))
			}
			return a
		},
	})
}

func fromSlogLevel(l slog.Level) LogLevel {
	switch {
	case l < slog.LevelInfo:
		return DEBUG
	case l < slog.LevelWarn:
		return INFO
	case l < slog.LevelError:
		return WARNING
	default:
		return ERROR
	}
}
