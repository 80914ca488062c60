package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything, for tests that wire
// the request-logging and recovery middleware without polluting output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
