package template

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Render replaces every literal occurrence of "{{ name }}" in src with
// the stringified value for name. Placeholder spacing is exact: a
// single space on each side of the name. Placeholders without a
// matching key are left untouched.
//
// Values are inserted verbatim, without any escaping. Callers rendering
// untrusted input into HTML must sanitize it first.
func Render(src string, data map[string]any) string {
	for key, value := range data {
		src = strings.ReplaceAll(src, "{{ "+key+" }}", fmt.Sprint(value))
	}
	return src
}

// RenderFile reads the template at path and renders it with data.
func RenderFile(path string, data map[string]any) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return Render(string(content), data), nil
}

// RenderFS reads the named template from fsys and renders it with data.
// It accepts embedded filesystems as well as os.DirFS trees.
func RenderFS(fsys fs.FS, name string, data map[string]any) (string, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return Render(string(content), data), nil
}
