// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// Common back-URL fallbacks for the admin area.
const (
	AdminBackURL         = "/admin"
	AdminJobsBackURL     = "/admin/jobs"
	AdminNewsBackURL     = "/admin/news"
	AdminContactsURL     = "/admin/contacts"
	AdminUsersBackURL    = "/admin/users"
	AdminPagesBackURL    = "/admin/pages"
	AdminApplicationsURL = "/admin/applications"
	AdminVolunteersURL   = "/admin/volunteers"
)

// SafeBackURL extracts and validates a "return" URL from the query string or
// form, rejecting absolute/off-site URLs and action subpaths that would loop
// back into edit/delete pages. Falls back to fallback when no valid return
// URL is present.
func SafeBackURL(r *http.Request, fallback string) string {
	ret := query.Get(r, "return")
	if ret == "" {
		ret = strings.TrimSpace(r.FormValue("return"))
	}

	dest := urlutil.SafeReturn(ret, "", fallback)

	// Never bounce back into an action page.
	for _, sub := range []string{"/edit", "/delete", "/new"} {
		if strings.Contains(dest, sub) {
			return fallback
		}
	}
	return dest
}
