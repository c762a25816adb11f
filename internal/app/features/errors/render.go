// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// errorPageData adds the HTTP status so error_page serves the not-found,
// bad-request, and server-error views alike.
type errorPageData struct {
	pageData
	Status int
}

// RenderUnauthorized asks the visitor to sign in. Used both by the
// /unauthorized route and by handlers that find no session mid-flow.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	data := newPageData(r, "Sign in required", "Please sign in to continue.", backURL, "/login")
	templates.Render(w, r, "error_forbidden", data)
}

// RenderForbidden shows an access error with a caller-supplied message, e.g.
// the self-protection refusals in the admin users feature.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := newPageData(r, "Access denied", msg, backURL, "/")
	templates.Render(w, r, "error_forbidden", data)
}

// RenderNotFound shows a "not found" page with the given message. Handlers
// pass a backURL into their own area (the jobs list, the admin inbox) so the
// visitor always has somewhere to go.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderStatusPage(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a "bad request" page with the given message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderStatusPage(w, r, http.StatusBadRequest, "Something's not right", msg, backURL)
}

// RenderServerError shows a generic failure page. The message must already be
// user-safe; internal detail belongs in the log, not here.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderStatusPage(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

func renderStatusPage(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if msg == "" {
		msg = http.StatusText(status)
	}

	data := errorPageData{
		pageData: newPageData(r, title, msg, backURL, "/"),
		Status:   status,
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
