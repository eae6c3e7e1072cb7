package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/itzpremsingh/star/core/response"
)

// Mux maps method+path to a registered handler. Routes are matched by a
// linear scan in registration order; each candidate tries exact match,
// typed-dynamic match, untyped-dynamic match, then query-augmented
// exact match, and the first success anywhere wins.
//
// Registration is not synchronized: register all routes before serving
// and treat the table as read-only afterwards. Dispatch itself is safe
// for concurrent use.
type Mux struct {
	tables    map[string]*table
	order     []string
	cache     *patternCache
	logger    *slog.Logger
	errorPage func(title, message string) string
}

// New creates an empty Mux accepting GET and POST routes.
func New(opts ...Option) *Mux {
	m := &Mux{
		tables: map[string]*table{
			http.MethodGet:  newTable(),
			http.MethodPost: newTable(),
		},
		order:     []string{http.MethodGet, http.MethodPost},
		cache:     newPatternCache(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		errorPage: response.ErrorPage,
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get registers a handler for GET requests on pattern.
func (m *Mux) Get(pattern string, h HandlerFunc) {
	m.register(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests on pattern.
func (m *Mux) Post(pattern string, h HandlerFunc) {
	m.register(http.MethodPost, pattern, h)
}

// Route registers a handler for one or more methods (GET when none are
// given). Method names are case-insensitive; anything besides GET and
// POST panics with ErrInvalidMethod.
func (m *Mux) Route(pattern string, h HandlerFunc, methods ...string) {
	if len(methods) == 0 {
		methods = []string{http.MethodGet}
	}
	for _, method := range methods {
		upper := strings.ToUpper(method)
		if _, ok := m.tables[upper]; !ok {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		m.register(upper, pattern, h)
	}
}

// Routes returns all registered routes in table order.
func (m *Mux) Routes() []Route {
	var routes []Route
	for _, method := range m.order {
		for _, rt := range m.tables[method].candidates() {
			routes = append(routes, Route{Method: method, Pattern: rt.pattern})
		}
	}
	return routes
}

func (m *Mux) register(method, pattern string, h HandlerFunc) {
	m.tables[method].add(normalize(pattern), h)
}

// ServeHTTP implements http.Handler.
func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := normalize(r.URL.Path)
	args := parseArgs(r.URL.RawQuery)
	c := newContext(w, r, args)

	tbl, ok := m.tables[r.Method]
	if !ok {
		// Only GET and POST tables exist; everything else has no
		// candidates and falls straight through to not-found.
		m.notFound(c, path)
		return
	}

	for _, rt := range tbl.candidates() {
		params, matched, err := m.matchCandidate(rt.pattern, path, len(args) > 0)
		if err != nil {
			// Broken pattern or converter contract violation: fail this
			// request, never the serving loop.
			m.logger.Error("route match failed",
				"method", r.Method, "path", path, "pattern", rt.pattern, "error", err)
			m.fail(c, err.Error())
			return
		}
		if matched {
			m.invoke(c, rt, params)
			return
		}
	}

	m.notFound(c, path)
}

// matchCandidate tries the four match strategies for one candidate in
// fixed priority order, stopping at the first success.
func (m *Mux) matchCandidate(pattern, path string, hasArgs bool) ([]any, bool, error) {
	// Exact match, byte-for-byte.
	if path == pattern {
		return nil, true, nil
	}

	// Dynamic matching is skipped for the root path.
	if path != "/" {
		mt, err := m.cache.get(pattern)
		if err != nil {
			return nil, false, err
		}

		switch mt.mode {
		case modeTyped:
			if caps, ok := mt.match(path); ok {
				params := make([]any, len(caps))
				for i, raw := range caps {
					v, err := mt.convs[i].Convert(raw)
					if err != nil {
						return nil, false, err
					}
					params[i] = v
				}
				return params, true, nil
			}
		case modeUntyped:
			if caps, ok := mt.match(path); ok {
				params := make([]any, len(caps))
				for i, raw := range caps {
					params[i] = raw
				}
				return params, true, nil
			}
		}
	}

	// Query-augmented exact match: the route's existence is confirmed,
	// no positional parameters; handlers read the arguments from the
	// request context.
	if hasArgs && path == pattern {
		return nil, true, nil
	}

	return nil, false, nil
}

// invoke runs the handler with the extracted parameters. The body is
// buffered before the status line is committed, so handler failures are
// reported as 500 instead of the upstream behavior of answering 200
// with an error page body.
func (m *Mux) invoke(c *Context, rt route, params []any) {
	body, err := func() (body string, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = toError(rec)
			}
		}()
		return rt.handler(c, params...)
	}()

	if err != nil {
		m.logger.Error("handler failed",
			"method", c.r.Method, "pattern", rt.pattern, "error", err)
		m.fail(c, err.Error())
		return
	}

	if err := response.WriteHTML(c.w, http.StatusOK, body); err != nil {
		m.logger.Error("response write failed", "pattern", rt.pattern, "error", err)
	}
}

func (m *Mux) notFound(c *Context, path string) {
	m.logger.Debug("no route matched", "method", c.r.Method, "path", path)
	if err := response.WriteHTML(c.w, http.StatusNotFound,
		m.errorPage("404 Not Found", "Page Not Found")); err != nil {
		m.logger.Error("response write failed", "error", err)
	}
}

func (m *Mux) fail(c *Context, message string) {
	if err := response.WriteHTML(c.w, http.StatusInternalServerError,
		m.errorPage("500 Internal Server Error", message)); err != nil {
		m.logger.Error("response write failed", "error", err)
	}
}
