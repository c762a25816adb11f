// internal/app/features/careers/admin_jobs.go
package careers

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	applicationstore "github.com/kstargroup/kstarweb/internal/app/store/applications"
	jobstore "github.com/kstargroup/kstarweb/internal/app/store/jobs"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/paging"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// jobInput defines validation rules shared by the create and edit forms.
type jobInput struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Department  string `validate:"required,max=100" label:"Department"`
	Location    string `validate:"required,max=200" label:"Location"`
	Type        string `validate:"required" label:"Employment type"`
	Description string `validate:"required,max=20000" label:"Description"`
	Deadline    string `validate:"required,datetime=2006-01-02" label:"Application deadline"`
	CoverImage  string `validate:"omitempty,url,max=2000" label:"Cover image URL"`
}

type adminJobRow struct {
	models.Job
	Applications int64
}

type adminJobListData struct {
	viewdata.BaseVM
	Jobs    []adminJobRow
	Total   int64
	Page    int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

type jobFormData struct {
	formutil.Base
	JobID       string
	JobTitle    string
	Department  string
	Location    string
	Type        string
	Description string
	Deadline    string
	CoverImage  string
	JobTypes    []string
}

// ServeJobList handles GET /admin/jobs.
// Authorization: RequireRole("admin") middleware in routes.go.
func (h *AdminHandler) ServeJobList(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	js := jobstore.New(h.DB)

	total, err := js.Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count jobs failed", err, "Unable to load jobs.", navigation.AdminBackURL)
		return
	}

	jobs, err := js.ListNewestFirst(ctx, start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list jobs failed", err, "Unable to load jobs.", navigation.AdminBackURL)
		return
	}
	show, res := paging.Trim(len(jobs), start)
	jobs = jobs[:show]

	appStore := applicationstore.New(h.DB)
	rows := make([]adminJobRow, 0, len(jobs))
	for _, j := range jobs {
		n, err := appStore.Count(ctx, bson.M{"job_id": j.ID})
		if err != nil {
			h.ErrLog.LogServerError(w, r, "count applications failed", err, "Unable to load jobs.", navigation.AdminBackURL)
			return
		}
		rows = append(rows, adminJobRow{Job: j, Applications: n})
	}

	data := adminJobListData{
		BaseVM:  viewdata.NewBaseVM(r, "Jobs", navigation.AdminBackURL),
		Jobs:    rows,
		Total:   total,
		Page:    start/paging.PageSize + 1,
		HasPrev: res.HasPrev,
		HasNext: res.HasNext,
		PrevURL: navigation.StartURL(navigation.AdminJobsBackURL, paging.PrevStart(start)),
		NextURL: navigation.StartURL(navigation.AdminJobsBackURL, paging.NextStart(start)),
	}
	templates.Render(w, r, "admin_jobs", data)
}

// ServeNew renders the "New Job" form.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := jobFormData{Type: models.JobTypeFullTime, JobTypes: models.JobTypes}
	formutil.SetBase(&data.Base, r, "New Job", navigation.AdminJobsBackURL)
	templates.Render(w, r, "admin_job_new", data)
}

// HandleCreate processes the New Job form submission.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse job form failed", err, "Invalid form submission.", navigation.AdminJobsBackURL)
		return
	}

	in := readJobForm(r)

	renderWithError := func(msg string) {
		data := jobFormFromInput("", in)
		formutil.SetBase(&data.Base, r, "New Job", navigation.AdminJobsBackURL)
		data.SetError(msg)
		templates.Render(w, r, "admin_job_new", data)
	}

	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}
	if !models.ValidJobType(in.Type) {
		renderWithError("Please select a valid employment type.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	job := models.Job{
		Title:               in.Title,
		Department:          in.Department,
		Location:            in.Location,
		Type:                in.Type,
		Description:         in.Description,
		ApplicationDeadline: in.Deadline,
		CoverImageURL:       in.CoverImage,
	}
	if _, err := jobstore.New(h.DB).Create(ctx, job); err != nil {
		renderWithError("Database error while creating the job.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminJobsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// ServeEdit renders the job edit form.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	job, ok := h.loadJob(w, r)
	if !ok {
		return
	}

	data := jobFormData{
		JobID:       job.ID.Hex(),
		JobTitle:    job.Title,
		Department:  job.Department,
		Location:    job.Location,
		Type:        job.Type,
		Description: job.Description,
		Deadline:    job.ApplicationDeadline,
		CoverImage:  job.CoverImageURL,
		JobTypes:    models.JobTypes,
	}
	formutil.SetBase(&data.Base, r, "Edit Job", navigation.AdminJobsBackURL)
	templates.Render(w, r, "admin_job_edit", data)
}

// HandleEdit processes the job edit form submission.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	job, ok := h.loadJob(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse job form failed", err, "Invalid form submission.", navigation.AdminJobsBackURL)
		return
	}

	in := readJobForm(r)

	renderWithError := func(msg string) {
		data := jobFormFromInput(job.ID.Hex(), in)
		formutil.SetBase(&data.Base, r, "Edit Job", navigation.AdminJobsBackURL)
		data.SetError(msg)
		templates.Render(w, r, "admin_job_edit", data)
	}

	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return
	}
	if !models.ValidJobType(in.Type) {
		renderWithError("Please select a valid employment type.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mut := models.Job{
		Title:               in.Title,
		Department:          in.Department,
		Location:            in.Location,
		Type:                in.Type,
		Description:         in.Description,
		ApplicationDeadline: in.Deadline,
		CoverImageURL:       in.CoverImage,
	}
	if err := jobstore.New(h.DB).Update(ctx, job.ID, mut); err != nil {
		renderWithError("Database error while saving the job.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminJobsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete removes a job listing. Its applications are left in place;
// they carry a denormalized copy of the job title.
// POST /admin/jobs/{id}/delete
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	job, ok := h.loadJob(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := jobstore.New(h.DB).Delete(ctx, job.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "delete job failed", err, "Unable to delete the job.", navigation.AdminJobsBackURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminJobsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// loadJob resolves {id} for the admin handlers.
func (h *AdminHandler) loadJob(w http.ResponseWriter, r *http.Request) (*models.Job, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That job does not exist.", navigation.AdminJobsBackURL)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	job, err := jobstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That job does not exist.", navigation.AdminJobsBackURL)
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load job failed", err, "Unable to load the job.", navigation.AdminJobsBackURL)
		return nil, false
	}
	return job, true
}

func readJobForm(r *http.Request) jobInput {
	return jobInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Department:  strings.TrimSpace(r.FormValue("department")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Type:        strings.TrimSpace(r.FormValue("type")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Deadline:    strings.TrimSpace(r.FormValue("deadline")),
		CoverImage:  strings.TrimSpace(r.FormValue("cover_image_url")),
	}
}

func jobFormFromInput(id string, in jobInput) jobFormData {
	return jobFormData{
		JobID:       id,
		JobTitle:    in.Title,
		Department:  in.Department,
		Location:    in.Location,
		Type:        in.Type,
		Description: in.Description,
		Deadline:    in.Deadline,
		CoverImage:  in.CoverImage,
		JobTypes:    models.JobTypes,
	}
}
