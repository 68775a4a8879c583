// Package templates provides the HTML page templates compiled into the
// binary.
package templates

import "embed"

// EmbeddedTemplates provides read-only access to page templates.
//
//go:embed *.tmpl
var EmbeddedTemplates embed.FS
