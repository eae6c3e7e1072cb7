package router

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod is raised at registration time for HTTP methods
// outside GET and POST. Registration happens during startup, so the
// panic propagates to the registering caller rather than to a request.
var ErrInvalidMethod = errors.New("invalid http method")

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
