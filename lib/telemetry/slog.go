package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the process-wide slog handler. Pass debug=true to
// get per-request and per-record diagnostics.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
