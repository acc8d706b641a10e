package view

import "html/template"

// TrustedHTML is markup that was sanitized when the document was built and
// is injected into pages without escaping. Views never sanitize it again.
type TrustedHTML string

// HTML marks the content as safe for html/template.
func (h TrustedHTML) HTML() template.HTML {
	return template.HTML(h)
}

// String returns the raw markup.
func (h TrustedHTML) String() string {
	return string(h)
}
