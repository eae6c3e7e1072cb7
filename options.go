package star

import (
	"errors"
	"log/slog"

	"github.com/itzpremsingh/star/core/router"
	"github.com/itzpremsingh/star/core/server"
)

// Option configures an App during construction.
type Option func(*App) error

// WithLogger replaces the environment-configured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

// WithRouter replaces the default router.
func WithRouter(mux *router.Mux) Option {
	return func(app *App) error {
		if mux == nil {
			return errors.New("router cannot be nil")
		}
		app.mux = mux
		return nil
	}
}

// WithServer replaces the environment-configured server.
func WithServer(srv *server.Server) Option {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}
