package testutil

import (
	"io"
	"log/slog"
)

// Logger returns a logger that discards everything, for use in tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
