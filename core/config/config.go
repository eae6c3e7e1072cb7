package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load receives a nil pointer.
var ErrNilConfig = errors.New("config: nil config pointer")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded struct value
)

// Load parses environment variables into cfg based on its `env` struct
// tags. A .env file in the working directory is loaded once per process
// before the first parse; missing .env files are not an error.
//
// Each configuration type is parsed only once per process and cached,
// so repeated loads of the same type return identical values.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is Load panicking on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
