package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the per-request snapshot handed to handlers: the incoming
// request, the response writer, and the parsed query arguments. A fresh
// Context is built for every dispatch and never shared between
// requests, which is what keeps concurrent serving safe.
// It implements context.Context by delegating to the request's context.
type Context struct {
	w    http.ResponseWriter
	r    *http.Request
	args map[string]string
}

func newContext(w http.ResponseWriter, r *http.Request, args map[string]string) *Context {
	return &Context{w: w, r: r, args: args}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request's context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the *http.Request being dispatched.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter for the request.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Arg returns the query argument for key, or "" if absent. Values are
// raw wire bytes: duplicates keep the last occurrence and nothing is
// percent-decoded.
func (c *Context) Arg(key string) string {
	return c.args[key]
}

// Args returns the full query argument map for this request.
func (c *Context) Args() map[string]string {
	return c.args
}

var _ context.Context = (*Context)(nil)
