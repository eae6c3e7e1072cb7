// Package router implements the route-matching engine: an ordered rule
// set per HTTP method, pattern-to-regexp compilation with typed
// converters, and the match/dispatch/error-fallback protocol.
//
// # Patterns
//
// A pattern is a path template with literal segments and optional
// placeholders:
//
//	/user/<int:id>      typed placeholder, converted to int
//	/price/<float:p>    typed placeholder, converted to float64
//	/item/<slug>        untyped placeholder, raw string (excludes '/')
//
// Typed and untyped placeholders do not mix: a single typed placeholder
// makes the whole pattern typed, and any bare <name> tokens in it are
// matched as literal text including the angle brackets. This mirrors
// the precedence rule of the original star framework and is kept as is;
// avoid mixing the two styles in one pattern.
//
// Trailing slashes are insignificant on both patterns and request
// paths: exactly one is stripped during normalization.
//
// # Dispatch
//
// Candidates are scanned in registration order. Each candidate tries,
// in order: exact match, typed-dynamic match, untyped-dynamic match,
// and (when the request carries query arguments) a query-augmented
// exact match. The first success anywhere ends the scan. No match
// renders the 404 page; a failing handler renders the 500 page with the
// failure text as the message.
//
// Pattern compilation is lazy and memoized per pattern string; since
// compilation is a pure function of the pattern text, the cache never
// changes matching behavior.
//
// # Basic usage
//
//	m := router.New()
//	m.Get("/user/<int:id>", func(c *router.Context, params ...any) (string, error) {
//		return fmt.Sprintf("user %d", params[0].(int)), nil
//	})
//	http.ListenAndServe(":8080", m)
//
// Handlers run on net/http's per-connection goroutines. Register every
// route before serving starts and do not register afterwards; the
// immutable table is what makes concurrent dispatch safe without
// locking. No timeout is applied around handler invocation, so a hung
// handler hangs its request.
package router
