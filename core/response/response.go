package response

import (
	"embed"
	"net/http"

	"github.com/itzpremsingh/star/core/template"
)

//go:embed templates/error.html
var templates embed.FS

// WriteHTML writes body as a text/html response with the given status.
// A zero status defaults to 200 OK.
func WriteHTML(w http.ResponseWriter, status int, body string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if body != "" {
		_, err := w.Write([]byte(body))
		return err
	}
	return nil
}

// ErrorPage renders the built-in error page with the given title and
// message. Both values are inserted verbatim; callers must not pass
// untrusted HTML in message without sanitizing it first.
func ErrorPage(title, message string) string {
	page, err := template.RenderFS(templates, "templates/error.html", map[string]any{
		"title":   title,
		"message": message,
	})
	if err != nil {
		// The template is embedded, so this cannot fail at runtime;
		// fall back to a bare page to keep the contract total.
		return "<h1>" + title + "</h1><p>" + message + "</p>"
	}
	return page
}
