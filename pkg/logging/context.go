package logging

import (
	"log/slog"
)

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("scanner")
//	log.Debug("stream exhausted")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}
