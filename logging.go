package main

import (
	"io"
	"log/slog"
)

// setupLogger routes diagnostics to stderr so the report on stdout stays
// clean. Degraded sections log at Warn; only the fatal CPU failure is Error.
func setupLogger(w io.Writer) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	handler := slog.NewTextHandler(w, opts)
	slog.SetDefault(slog.New(handler).With("app", "sysreport"))
}
