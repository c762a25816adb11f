// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
)

// pageData is the view model every error page renders with. It carries the
// full site chrome so the shared header and footer work on error views too.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler serves the standalone /forbidden and /unauthorized routes that the
// session guards redirect to. It holds no state; the render helpers in this
// package do the work.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden handles GET /forbidden: a signed-in visitor without the admin
// role landed on an admin route.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderForbidden(w, r, "You don't have permission to view this page.", "/")
}

// Unauthorized handles GET /unauthorized.
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	RenderUnauthorized(w, r, "/login")
}

func newPageData(r *http.Request, title, msg, backURL, backDefault string) pageData {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backDefault),
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	return data
}
