package renderer

import "embed"

//go:embed templates/*.tmpl assets/style.css
var siteFS embed.FS
