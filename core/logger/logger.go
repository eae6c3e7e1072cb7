package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls logger construction from the environment.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// New returns a text logger writing to stderr at info level.
func New() *slog.Logger {
	return NewFromConfig(Config{Level: "info", Format: "text"})
}

// NewFromConfig builds a logger from cfg. Unknown levels fall back to
// info; any format other than "json" selects the text handler.
func NewFromConfig(cfg Config) *slog.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
