package router

import "log/slog"

// Option configures a Mux.
type Option func(*Mux)

// WithLogger sets the logger used for dispatch and handler failures.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mux) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithErrorPage replaces the renderer used for the not-found and
// internal-error pages.
func WithErrorPage(render func(title, message string) string) Option {
	return func(m *Mux) {
		if render != nil {
			m.errorPage = render
		}
	}
}
