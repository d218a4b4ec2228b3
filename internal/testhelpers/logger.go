package testhelpers

import (
	"io"
	"log/slog"

	"github.com/myrjola/liftplan/internal/logging"
)

// NewLogger returns a debug-level text logger writing to logSink, typically a
// [Writer]. The handler is wrapped in [logging.NewContextHandler] so tests
// exercise the same logging path as the server.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	})
	return slog.New(logging.NewContextHandler(handler))
}
