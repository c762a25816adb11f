// internal/app/features/careers/applications.go
package careers

import (
	"context"
	"net/http"
	"strings"
	"time"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	applicationstore "github.com/kstargroup/kstarweb/internal/app/store/applications"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/paging"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type applicationsData struct {
	viewdata.BaseVM
	Applications []models.JobApplication
	Statuses     []string
	JobFilter    string
	Total        int64
	Page         int
	HasPrev      bool
	HasNext      bool
	PrevURL      string
	NextURL      string
}

// ServeApplications handles GET /admin/applications (optionally ?job={id}).
// Authorization: RequireRole("admin") middleware in routes.go.
func (h *AdminHandler) ServeApplications(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)

	var jobID *primitive.ObjectID
	jobFilter := query.Get(r, "job")
	if jobFilter != "" {
		id, err := primitive.ObjectIDFromHex(jobFilter)
		if err != nil {
			uierrors.RenderBadRequest(w, r, "Invalid job filter.", navigation.AdminApplicationsURL)
			return
		}
		jobID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	appStore := applicationstore.New(h.DB)

	countFilter := bson.M{}
	if jobID != nil {
		countFilter["job_id"] = *jobID
	}
	total, err := appStore.Count(ctx, countFilter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count applications failed", err, "Unable to load applications.", navigation.AdminBackURL)
		return
	}

	apps, err := appStore.ListNewestFirst(ctx, jobID, start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list applications failed", err, "Unable to load applications.", navigation.AdminBackURL)
		return
	}
	show, res := paging.Trim(len(apps), start)
	apps = apps[:show]

	base := navigation.AdminApplicationsURL
	if jobFilter != "" {
		base += "?job=" + jobFilter
	}

	data := applicationsData{
		BaseVM:       viewdata.NewBaseVM(r, "Applications", navigation.AdminBackURL),
		Applications: apps,
		Statuses:     models.ApplicationStatuses,
		JobFilter:    jobFilter,
		Total:        total,
		Page:         start/paging.PageSize + 1,
		HasPrev:      res.HasPrev,
		HasNext:      res.HasNext,
		PrevURL:      navigation.StartURL(base, paging.PrevStart(start)),
		NextURL:      navigation.StartURL(base, paging.NextStart(start)),
	}
	templates.Render(w, r, "admin_applications", data)
}

// HandleSetStatus updates an application's review status.
// POST /admin/applications/{id}/status
func (h *AdminHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	app, ok := h.loadApplication(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse status form failed", err, "Invalid form submission.", navigation.AdminApplicationsURL)
		return
	}
	status := strings.TrimSpace(r.FormValue("status"))
	if !models.ValidApplicationStatus(status) {
		uierrors.RenderBadRequest(w, r, "Unknown application status.", navigation.AdminApplicationsURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := applicationstore.New(h.DB).SetStatus(ctx, app.ID, status); err != nil {
		h.ErrLog.LogServerError(w, r, "set application status failed", err, "Unable to update the application.", navigation.AdminApplicationsURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminApplicationsURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// ServeResume streams the stored résumé for an application. Local storage is
// served directly from disk; other backends redirect to a short-lived signed
// URL.
// GET /admin/applications/{id}/resume
func (h *AdminHandler) ServeResume(w http.ResponseWriter, r *http.Request) {
	app, ok := h.loadApplication(w, r)
	if !ok {
		return
	}
	if app.ResumePath == "" {
		uierrors.RenderNotFound(w, r, "This application has no résumé attached.", navigation.AdminApplicationsURL)
		return
	}

	filename := app.ResumeFileName
	if filename == "" {
		filename = "resume"
	}
	contentDisposition := "attachment; filename=\"" + filename + "\""

	// Prevent browser caching of downloads.
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	if localStorage, ok := h.Storage.(*storage.Local); ok {
		fullPath, err := localStorage.GetFullPath(app.ResumePath)
		if err != nil {
			h.Log.Error("error getting résumé path",
				zap.Error(err),
				zap.String("path", app.ResumePath))
			uierrors.RenderServerError(w, r, "Failed to locate the résumé file.", navigation.AdminApplicationsURL)
			return
		}
		w.Header().Set("Content-Disposition", contentDisposition)
		http.ServeFile(w, r, fullPath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	signedURL, err := h.Storage.PresignedURL(ctx, app.ResumePath, &storage.PresignOptions{
		Expires:            15 * time.Minute,
		ContentDisposition: contentDisposition,
	})
	if err != nil {
		h.Log.Error("error generating résumé URL",
			zap.Error(err),
			zap.String("path", app.ResumePath))
		uierrors.RenderServerError(w, r, "Failed to generate the download link.", navigation.AdminApplicationsURL)
		return
	}
	http.Redirect(w, r, signedURL, http.StatusSeeOther)
}

// HandleDeleteApplication removes an application document. The résumé blob,
// if any, stays in storage; there is no cross-store transaction to clean it
// up atomically.
// POST /admin/applications/{id}/delete
func (h *AdminHandler) HandleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	app, ok := h.loadApplication(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := applicationstore.New(h.DB).Delete(ctx, app.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "delete application failed", err, "Unable to delete the application.", navigation.AdminApplicationsURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminApplicationsURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *AdminHandler) loadApplication(w http.ResponseWriter, r *http.Request) (*models.JobApplication, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That application does not exist.", navigation.AdminApplicationsURL)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := applicationstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That application does not exist.", navigation.AdminApplicationsURL)
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load application failed", err, "Unable to load the application.", navigation.AdminApplicationsURL)
		return nil, false
	}
	return app, true
}
