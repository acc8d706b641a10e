// Package web holds the HTML templates and stylesheets compiled into the binaries.
package web

import "embed"

//go:embed template/*.html
var Templates embed.FS

//go:embed static
var Static embed.FS
