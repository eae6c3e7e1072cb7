package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzpremsingh/star/core/response"
)

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	t.Run("writes_body_with_status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		err := response.WriteHTML(w, http.StatusOK, "<h1>hello</h1>")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<h1>hello</h1>", w.Body.String())
	})

	t.Run("zero_status_defaults_to_ok", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		err := response.WriteHTML(w, 0, "body")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty_body_writes_headers_only", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		err := response.WriteHTML(w, http.StatusNotFound, "")

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	t.Run("substitutes_title_and_message", func(t *testing.T) {
		t.Parallel()

		page := response.ErrorPage("404 Not Found", "Page Not Found")

		assert.Contains(t, page, "404 Not Found")
		assert.Contains(t, page, "Page Not Found")
		assert.NotContains(t, page, "{{ title }}")
		assert.NotContains(t, page, "{{ message }}")
	})

	t.Run("inserts_message_verbatim", func(t *testing.T) {
		t.Parallel()

		page := response.ErrorPage("500 Internal Server Error", "<b>boom</b>")

		assert.Contains(t, page, "<b>boom</b>")
	})
}
