package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzpremsingh/star/core/server"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("creates_server_from_defaults", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.DefaultConfig())

		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("accepts_custom_values", func(t *testing.T) {
		t.Parallel()

		cfg := server.Config{
			Addr:            ":9000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    20 * time.Second,
			IdleTimeout:     30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxHeaderBytes:  2 << 20,
		}

		srv, err := server.NewFromConfig(cfg)

		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("options_override_config", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(
			server.DefaultConfig(),
			server.WithShutdownTimeout(10*time.Second),
		)

		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("fails_without_address", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.Config{})

		assert.Nil(t, srv)
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("fails_on_unreadable_tls_files", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.TLSCertFile = "/nonexistent/cert.pem"
		cfg.TLSKeyFile = "/nonexistent/key.pem"

		srv, err := server.NewFromConfig(cfg)

		assert.Nil(t, srv)
		assert.Error(t, err)
	})
}
