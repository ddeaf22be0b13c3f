// Package log builds the stderr logger used across hashfn.
package log

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the logger type handed between packages.
type Logger = log.Logger

// NewLogger creates a new logger writing to os.Stderr.
// If DEBUG or HASHFN_DEBUG is set (e.g., DEBUG=1), the level is DEBUG; otherwise, it's INFO.
func NewLogger() *log.Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  log.InfoLevel,
		Prefix: "hashfn",
	})

	if os.Getenv("DEBUG") != "" || os.Getenv("HASHFN_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
