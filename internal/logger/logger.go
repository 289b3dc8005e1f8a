// Package logger holds the shared application logger.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Log is the process-wide logger. Diagnostics go to stderr so that
// command output on stdout stays machine-readable.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})
