// Structured logging for coreedit's background collaborators (backup
// saver, compositor, canvas diffing) that can't write to stdout while
// it's the TUI's own output stream. Every call site uses a printf-style
// format string rather than slog's key/value pairs — the messages are
// one-line diagnostics about a file path, a version number, or an error,
// not structured events worth querying later — so this wraps slog.Logger
// behind the same Debug/Info/Warn/Error surface the rest of the tree
// already calls, with the level gate and message formatting done here
// instead of per call site.

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	levelVar slog.LevelVar
	logger   *slog.Logger
)

func init() {
	levelVar.Set(LevelInfo)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &levelVar}))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	levelVar.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return levelVar.Level()
}

// SetOutput redirects log output, for tests that want to assert on
// emitted content instead of just "no panic".
func SetOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar}))
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logger.Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logger.Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message if the level allows it. LevelError is the
// highest of this package's levels, so Error is emitted at every one of
// them; only a custom slog.Level above LevelError suppresses it.
func Error(format string, args ...any) {
	logger.Error(fmt.Sprintf(format, args...))
}
