// Package htmlsanitize sanitizes admin-authored HTML before it is stored.
// News content and page bodies pass through here so that stored markup is
// limited to basic formatting, links, and images.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "div", "span", "table", "td", "th", "tr")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize returns s with disallowed HTML removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
