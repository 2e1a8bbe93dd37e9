// Package web holds the server-rendered HTML templates, embedded so the
// binary and the tests need no working-directory assumptions.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
