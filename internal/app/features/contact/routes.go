// internal/app/features/contact/routes.go
package contact

import (
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public contact routes (typically at "/contact").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleSubmit)
	return r
}

// AdminRoutes mounts the contact inbox routes (typically at "/admin/contacts").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeInbox)
		pr.Get("/{id}", h.ServeSubmission)
		pr.Post("/{id}/star", h.HandleSetStarred)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
