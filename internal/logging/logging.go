// Package logging wraps charmbracelet/log with a package-level default
// logger for the CLI.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger *log.Logger
	once          sync.Once
)

// New creates a logger writing to stderr at the given level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	once.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
