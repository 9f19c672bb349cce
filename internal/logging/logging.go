// Package logging builds the diagnostic logger the launcher writes to stderr.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coordination-oru/demolauncher/internal/branding"
)

// New returns a logger writing to w at the given level. Unknown or empty
// levels fall back to info.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          branding.CLIName(),
		ReportTimestamp: false,
		Level:           ParseLevel(level),
	})
}

// ParseLevel maps a config value to a log level.
func ParseLevel(raw string) log.Level {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "warning":
		return log.WarnLevel
	case "off", "none", "disabled":
		return log.FatalLevel
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
