// Package config provides type-safe environment variable loading with
// per-type caching using Go generics. It loads .env files automatically
// on first use and parses variables with the caarlos0/env library.
//
// Basic usage:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded once per application lifetime;
// subsequent loads of the same type return the cached value.
package config
