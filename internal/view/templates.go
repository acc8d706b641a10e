package view

import (
	"html/template"
	"io"

	"github.com/codeconfidence/web"
)

// Template names shared by the HTTP handlers and the static builder.
const (
	TemplateListing  = "index.html"
	TemplateDetail   = "post.html"
	TemplateNotFound = "404.html"
	TemplateError    = "error.html"
)

// ParseTemplates loads the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(web.Templates, "template/*.html")
}

// Execute writes page using the named template.
func Execute(tmpl *template.Template, w io.Writer, name string, page Page) error {
	return tmpl.ExecuteTemplate(w, name, page)
}
