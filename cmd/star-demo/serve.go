package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/itzpremsingh/star"
	"github.com/itzpremsingh/star/core/router"
	"github.com/itzpremsingh/star/core/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []star.Option{}
			if addr != "" {
				opts = append(opts, star.WithServer(server.New(addr)))
			}

			app, err := star.New(opts...)
			if err != nil {
				return err
			}
			registerRoutes(app)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the demo route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := star.New()
			if err != nil {
				return err
			}
			registerRoutes(app)

			for _, rt := range app.Routes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", rt.Method, rt.Pattern)
			}
			return nil
		},
	}
}

func registerRoutes(app *star.App) {
	app.Get("/", func(c *router.Context, params ...any) (string, error) {
		return "<h1>star demo</h1><p>try /user/42, /item/red-shoes, /price/3.14</p>", nil
	})

	app.Get("/user/<int:id>", func(c *router.Context, params ...any) (string, error) {
		return fmt.Sprintf("<p>user #%d</p>", params[0].(int)), nil
	})

	app.Get("/item/<slug>", func(c *router.Context, params ...any) (string, error) {
		return fmt.Sprintf("<p>item %s</p>", params[0].(string)), nil
	})

	app.Get("/price/<float:p>", func(c *router.Context, params ...any) (string, error) {
		return fmt.Sprintf("<p>price %.2f</p>", params[0].(float64)), nil
	})

	app.Get("/search", func(c *router.Context, params ...any) (string, error) {
		return fmt.Sprintf("<p>searching for %q</p>", c.Arg("q")), nil
	})

	app.Post("/orders", func(c *router.Context, params ...any) (string, error) {
		return "<p>order accepted</p>", nil
	})

	app.Get("/broken", func(c *router.Context, params ...any) (string, error) {
		return "", errors.New("this route always fails")
	})
}
