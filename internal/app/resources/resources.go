// Package resources holds the site-wide template partials: the page chrome
// (page_header, page_footer) and the admin-table pager. Feature packages
// register their own sets in init; these shared partials are registered once
// at startup so every set can reference them.
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var sharedFS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the shared partials with the template
// engine. Safe to call more than once; only the first call registers.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       sharedFS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
