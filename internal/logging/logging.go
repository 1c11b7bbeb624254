// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewHandler builds a text slog handler at the given level. A nil writer
// defaults to stderr, keeping stdout free for command output and the MCP
// stdio framing.
func NewHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}

	lvl := log.InfoLevel
	reportTimestamp := false
	switch strings.ToLower(level) {
	case "debug":
		lvl = log.DebugLevel
		reportTimestamp = true
	case "info", "":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: reportTimestamp,
	})
}

// Setup installs the handler as the slog default.
func Setup(level string) {
	slog.SetDefault(slog.New(NewHandler(level, nil)))
}
