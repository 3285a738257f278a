// Package logging provides a minimal logging facade for the FMI wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality, and adapters that route a unit's log
// callback into it.
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Unit Messages
//
// Sink turns a Logger into the log callback of a binding. Each message the
// unit emits arrives fully rendered and is logged at a level derived from its
// status, with the instance name and category as attributes:
//
//	inst, err := fmi2.Instantiate(path, cfg, fmi2.WithLogger(logger))
//	// Logs: level=WARN msg="x=42" instance=sim category=logAll status=warning
package logging
