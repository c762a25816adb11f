// internal/app/features/careers/routes.go
package careers

import (
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public careers routes (typically at "/careers").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeJob)

	// Applying requires a signed-in account so the application is tied to a
	// real identity; any role may apply.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/{id}/apply", h.ServeApply)
		pr.Post("/{id}/apply", h.HandleApply)
	})

	return r
}

// AdminRoutes mounts the job and application management routes
// (typically at "/admin/jobs" and "/admin/applications" from bootstrap).
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeJobList)

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)

		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}

// ApplicationRoutes mounts the application management routes
// (typically at "/admin/applications" from bootstrap).
func ApplicationRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeApplications)
		pr.Post("/{id}/status", h.HandleSetStatus)
		pr.Get("/{id}/resume", h.ServeResume)
		pr.Post("/{id}/delete", h.HandleDeleteApplication)
	})

	return r
}
