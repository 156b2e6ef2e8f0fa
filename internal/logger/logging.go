// Package logger provides per-package charmbracelet/log factories so each
// subsystem logs under its own prefix while respecting the global level.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm logger with the given prefix.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
