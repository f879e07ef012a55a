// Package logging provides a process-wide structured logger for simplesql.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. The scanner and
// the command-line driver obtain their loggers through this package so that
// log level and output destination are controlled from a single place.
//
// # Initialisation
//
// Call Init once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug}); err != nil {
//	    log.Fatal(err)
//	}
//
// If GetLogger is called before Init, InitDefault is run lazily: WARN level,
// text format, written to stderr so that token output on stdout stays clean.
//
// # Context helpers
//
//	log := logging.WithComponent("scanner") // adds component field
package logging
