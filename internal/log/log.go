// Package log provides the package-level zerolog logger used by the aria tool.
package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop() // Default to no-op logger
)

// SetConsole routes human-readable logs to w.
func SetConsole(w io.Writer) {
	Set(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true})
}

// Set routes JSON logs to w, keeping the current level.
func Set(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	lvl := pkgLogger.GetLevel()
	if lvl == zerolog.Disabled {
		lvl = zerolog.InfoLevel
	}
	pkgLogger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// SetLevel parses a zerolog level name ("debug", "info", "warn", ...).
// An empty name selects info.
func SetLevel(name string) error {
	lvl := zerolog.InfoLevel
	if name != "" {
		var err error
		lvl, err = zerolog.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("log: invalid level %q: %w", name, err)
		}
	}
	mu.Lock()
	pkgLogger = pkgLogger.Level(lvl)
	mu.Unlock()
	return nil
}

// Reset restores the no-op logger.
func Reset() {
	mu.Lock()
	pkgLogger = zerolog.Nop()
	mu.Unlock()
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := pkgLogger
	return &l
}

func Debug() *zerolog.Event { return logger().Debug() }
func Info() *zerolog.Event  { return logger().Info() }
func Warn() *zerolog.Event  { return logger().Warn() }
func Error() *zerolog.Event { return logger().Error() }
func Fatal() *zerolog.Event { return logger().Fatal() }

// Printf sends a log event using info level and no extra field.
// Arguments are handled in the manner of fmt.Printf.
func Printf(format string, v ...any) {
	logger().Info().CallerSkipFrame(1).Msgf(format, v...)
}
