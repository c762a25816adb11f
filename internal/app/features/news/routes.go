// internal/app/features/news/routes.go
package news

import (
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public news routes (typically at "/news").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeItem)
	return r
}

// AdminRoutes mounts the news management routes (typically at "/admin/news").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeAdminList)

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)

		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
