// Package star is a minimal HTTP framework built around a typed-pattern
// request router. It maps method+path to registered handlers,
// extracting typed path parameters along the way, and falls back to a
// rendered error page when no route matches or a handler fails.
//
// # Quick start
//
//	app, err := star.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	app.Get("/", func(c *router.Context, params ...any) (string, error) {
//		return "<h1>Hello</h1>", nil
//	})
//
//	app.Get("/user/<int:id>", func(c *router.Context, params ...any) (string, error) {
//		return fmt.Sprintf("user #%d", params[0].(int)), nil
//	})
//
//	if err := app.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// Pattern syntax, match precedence, and the error-page contract are
// documented in core/router. Configuration comes from the environment
// (SERVER_ADDR, LOG_LEVEL, ...) via core/config.
package star
