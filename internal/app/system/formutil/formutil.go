// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a submission fails validation the form is re-rendered with the user's
// previously entered values, an error message, and the usual page context.
// Embed Base in the form's view model and call SetBase in the handler.
package formutil

import (
	"html/template"
	"net/http"

	"github.com/kstargroup/kstarweb/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// Base contains common fields for form pages.
type Base struct {
	Title       string
	IsLoggedIn  bool
	Role        string
	UserName    string
	BackURL     string
	CurrentPath string
	CSRFToken   string
	Error       template.HTML
}

// SetBase populates the common Base fields from the request context.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	role, uname, _, signedIn := authz.UserCtx(r)
	b.Title = title
	b.IsLoggedIn = signedIn
	b.Role = role
	b.UserName = uname
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
