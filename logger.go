package nucleardata

import (
	"log/slog"
	"os"
)

// logger is the diagnostic stream all container failures are reported on. Every fallible
// operation both returns a categorized error and logs a descriptive message here, so callers
// that only check sentinels still get a trace of what went wrong.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// SetLogHandler - Swaps the handler behind the package diagnostic stream. The default is a
// text handler writing to stderr at Info level. Passing nil restores the default.
func SetLogHandler(handler slog.Handler) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	logger = slog.New(handler)
}
