package pagewire

import (
	"embed"
	"io/fs"
)

//go:embed embedded/site
var embeddedSite embed.FS

// EmbeddedSite returns the sample site served when no SiteDir is configured:
// a landing page, an inner page, a stylesheet and its data.json.
func EmbeddedSite() (fs.FS, error) {
	return fs.Sub(embeddedSite, "embedded/site")
}
