package helpers

import (
	"log/slog"
	"os"
)

// DefaultHandler writes text logs to stderr. Stdout is left to script output.
func DefaultHandler(level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}

// SetupLogger creates a logger for one pipeline component.
// If the provided handler is nil, a warn-level stderr handler is used.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - component: The component name (e.g., "pipeline", "shibe")
//   - groupName: Optional additional group name within the component
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = DefaultHandler(slog.LevelWarn)
	}

	logger := slog.New(handler).With("component", component)
	if groupName != "" {
		logger = logger.WithGroup(groupName)
	}

	return handler, logger
}
