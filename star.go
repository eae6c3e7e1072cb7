package star

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/itzpremsingh/star/core/config"
	"github.com/itzpremsingh/star/core/logger"
	"github.com/itzpremsingh/star/core/router"
	"github.com/itzpremsingh/star/core/server"
)

// Config aggregates the framework's environment-driven configuration.
type Config struct {
	Server server.Config
	Log    logger.Config
}

// App ties the router, server, and logger together into a runnable
// application. Register routes before calling Run; the route table is
// read-only while serving.
type App struct {
	config Config
	logger *slog.Logger
	mux    *router.Mux
	server *server.Server
}

// New creates an App with configuration loaded from the environment.
func New(opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = logger.NewFromConfig(cfg.Log)
	}
	if app.mux == nil {
		app.mux = router.New(router.WithLogger(app.logger))
	}
	if app.server == nil {
		srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = srv
	}
	return app, nil
}

// Get registers a handler for GET requests on pattern.
func (a *App) Get(pattern string, h router.HandlerFunc) {
	a.mux.Get(pattern, h)
}

// Post registers a handler for POST requests on pattern.
func (a *App) Post(pattern string, h router.HandlerFunc) {
	a.mux.Post(pattern, h)
}

// Route registers a handler for the given methods (GET when none are
// given; only GET and POST are valid).
func (a *App) Route(pattern string, h router.HandlerFunc, methods ...string) {
	a.mux.Route(pattern, h, methods...)
}

// Routes returns all registered routes in registration order.
func (a *App) Routes() []router.Route {
	return a.mux.Routes()
}

// Handler exposes the app's router as an http.Handler, mainly for
// tests and for embedding into an existing server.
func (a *App) Handler() http.Handler {
	return a.mux
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves the app until ctx is canceled, then shuts down gracefully.
// A canceled context is a normal stop and returns nil.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("starting app", logger.Component("star"), "addr", a.config.Server.Addr)
	return a.server.Run(ctx, a.mux)()
}
