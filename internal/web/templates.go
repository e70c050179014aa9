// Package web holds the embedded HTML templates for the server-rendered
// pages. html/template escapes user-supplied values (names, search
// terms) on the way into the markup.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
