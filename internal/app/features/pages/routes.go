// internal/app/features/pages/routes.go
package pages

import (
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes registers the well-known content pages on the given router.
// Each slug gets a dedicated top-level path.
func PublicRoutes(r chi.Router, h *Handler) {
	r.Get("/about", h.servePage(models.PageSlugAbout, "About us"))
	r.Get("/courses", h.servePage(models.PageSlugCourses, "Courses"))
	r.Get("/faculty", h.servePage(models.PageSlugFaculty, "Faculty"))
}

// AdminRoutes mounts the page editor (typically at "/admin/pages").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeAdminList)
		pr.Get("/{slug}/edit", h.ServeEdit)
		pr.Post("/{slug}/edit", h.HandleEdit)
	})

	return r
}
