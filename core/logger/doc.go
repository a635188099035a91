// Package logger provides a structured logging facility based on Zap.
//
// It produces a configured logger instance for both execution surfaces of the
// menu manager: the interactive sync command (console encoding, colored
// levels) and the HTTP menu API (JSON encoding for log shipping).
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request ID) from a Fiber context
// and attaches it to the log entry, so all log lines belonging to one API
// request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (interactive) or json (services)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Sync started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
