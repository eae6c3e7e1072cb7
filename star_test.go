package star_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzpremsingh/star"
	"github.com/itzpremsingh/star/core/router"
)

func TestNew(t *testing.T) {
	t.Run("builds_app_with_defaults", func(t *testing.T) {
		app, err := star.New()

		require.NoError(t, err)
		assert.NotNil(t, app.Handler())
		assert.NotNil(t, app.Logger())
	})

	t.Run("rejects_nil_logger", func(t *testing.T) {
		_, err := star.New(star.WithLogger(nil))
		assert.Error(t, err)
	})

	t.Run("rejects_nil_router", func(t *testing.T) {
		_, err := star.New(star.WithRouter(nil))
		assert.Error(t, err)
	})

	t.Run("rejects_nil_server", func(t *testing.T) {
		_, err := star.New(star.WithServer(nil))
		assert.Error(t, err)
	})
}

func TestApp_Routing(t *testing.T) {
	app, err := star.New()
	require.NoError(t, err)

	app.Get("/", func(c *router.Context, params ...any) (string, error) {
		return "home", nil
	})
	app.Get("/user/<int:id>", func(c *router.Context, params ...any) (string, error) {
		return fmt.Sprintf("user %d", params[0].(int)), nil
	})
	app.Route("/submit", func(c *router.Context, params ...any) (string, error) {
		return "submitted", nil
	}, "post")

	serve := func(method, target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		app.Handler().ServeHTTP(w, httptest.NewRequest(method, target, nil))
		return w
	}

	t.Run("dispatches_registered_routes", func(t *testing.T) {
		assert.Equal(t, "home", serve(http.MethodGet, "/").Body.String())
		assert.Equal(t, "user 7", serve(http.MethodGet, "/user/7").Body.String())
		assert.Equal(t, "submitted", serve(http.MethodPost, "/submit").Body.String())
	})

	t.Run("unmatched_path_renders_404", func(t *testing.T) {
		w := serve(http.MethodGet, "/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page Not Found")
	})

	t.Run("routes_lists_registrations", func(t *testing.T) {
		assert.Equal(t, []router.Route{
			{Method: http.MethodGet, Pattern: "/"},
			{Method: http.MethodGet, Pattern: "/user/<int:id>"},
			{Method: http.MethodPost, Pattern: "/submit"},
		}, app.Routes())
	})
}
