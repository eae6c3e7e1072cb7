package logger

import "log/slog"

// Attribute helpers use the empty Attr pattern for nil safety, so calls
// like log.Info("msg", logger.Error(err)) need no explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component tags log records with the emitting component's name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
