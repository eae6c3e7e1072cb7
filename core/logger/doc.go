// Package logger constructs log/slog loggers from environment-driven
// configuration and provides small attribute helpers shared across the
// framework.
package logger
