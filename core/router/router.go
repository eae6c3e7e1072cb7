package router

import "strings"

// HandlerFunc handles a matched request. Path parameters extracted by
// the route pattern are passed positionally in placeholder order, each
// already converted by its declared converter (int, float64, or
// string). The returned body is written as text/html; a non-nil error
// produces the internal-server-error page instead.
//
// Query arguments are not passed positionally; handlers read them from
// the request context via Context.Arg.
type HandlerFunc func(c *Context, params ...any) (string, error)

// Route describes a registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// normalize strips exactly one trailing slash from a path or pattern,
// leaving the root path as "/". Interior slashes are never touched; a
// pattern and a path differing only by a trailing slash are equivalent.
func normalize(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
		if p == "" {
			return "/"
		}
	}
	return p
}

// parseArgs splits a raw query string into an argument map: pairs are
// separated by '&' and split on the first '='; parts without '=' are
// dropped, duplicate keys keep the last value. Values stay exactly as
// they appear on the wire, with no percent or '+' decoding.
func parseArgs(query string) map[string]string {
	args := make(map[string]string)
	if query == "" {
		return args
	}
	for _, part := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		args[key] = value
	}
	return args
}
