package web

import "embed"

// DistFS contains the built dashboard assets from the dist directory.
//
//go:embed all:dist
var DistFS embed.FS
