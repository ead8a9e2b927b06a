// Package web embeds the static frontend pages served at the root path.
package web

import "embed"

//go:embed *.html
var Assets embed.FS
