// internal/app/features/volunteer/routes.go
package volunteer

import (
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public volunteer routes (typically at "/volunteer").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleRegister)
	return r
}

// AdminRoutes mounts the registration list (typically at "/admin/volunteers").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeAdminList)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
