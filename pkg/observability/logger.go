// Package observability builds the diagnostic logger used by the CLI.
// Diagnostics go to stderr so they never mix with lint output.
package observability

import (
	"io"
	"log/slog"
)

const (
	attrService = "service"
	attrMode    = "mode"
)

// ServiceName is attached to every record.
const ServiceName = "linewidth"

// Mode names the front end that emitted a record.
type Mode string

// Front ends.
const (
	ModeBatch Mode = "batch"
	ModeFile  Mode = "file"
)

// NewLogger returns a text logger writing to w. Only warnings and errors are
// emitted unless verbose is set, in which case debug records are too.
// Service and mode attributes are attached to the handler up front so they
// stay at the top level even when groups are used.
func NewLogger(w io.Writer, verbose bool, mode Mode) *slog.Logger {
	return slog.New(newHandler(w, verbose, mode))
}

func newHandler(w io.Writer, verbose bool, mode Mode) slog.Handler {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	inner := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return inner.WithAttrs([]slog.Attr{
		slog.String(attrService, ServiceName),
		slog.String(attrMode, string(mode)),
	})
}
