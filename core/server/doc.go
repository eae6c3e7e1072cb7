// Package server wraps net/http's server with environment-driven
// configuration, functional options, and graceful shutdown. It is the
// I/O boundary of the framework: the router does the matching, this
// package does the listening.
//
// Basic usage:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Start(ctx, mux); err != nil {
//		log.Fatal(err)
//	}
//
// Start blocks until the context is canceled; Stop drains in-flight
// requests within the configured shutdown timeout. TLS is enabled by
// pointing SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE at a key pair.
package server
