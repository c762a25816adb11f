// internal/app/features/careers/public.go
package careers

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	jobstore "github.com/kstargroup/kstarweb/internal/app/store/jobs"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/paging"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// jobRow is a job listing row with its derived open/closed state.
type jobRow struct {
	models.Job
	Closed bool
}

type listData struct {
	viewdata.BaseVM
	Jobs    []jobRow
	Page    int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

type jobData struct {
	viewdata.BaseVM
	Job     models.Job
	Closed  bool
	Applied bool
}

// ServeList handles GET /careers.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	jobs, err := jobstore.New(h.DB).ListNewestFirst(ctx, start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list jobs failed", err, "Unable to load job listings.", "/")
		return
	}

	show, res := paging.Trim(len(jobs), start)
	jobs = jobs[:show]

	now := time.Now()
	rows := make([]jobRow, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, jobRow{Job: j, Closed: j.DeadlinePassed(now)})
	}

	data := listData{
		BaseVM:  viewdata.NewBaseVM(r, "Careers", "/"),
		Jobs:    rows,
		Page:    start/paging.PageSize + 1,
		HasPrev: res.HasPrev,
		HasNext: res.HasNext,
		PrevURL: navigation.StartURL("/careers", paging.PrevStart(start)),
		NextURL: navigation.StartURL("/careers", paging.NextStart(start)),
	}
	templates.Render(w, r, "careers_list", data)
}

// ServeJob handles GET /careers/{id}.
func (h *Handler) ServeJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.loadJob(w, r)
	if !ok {
		return
	}

	data := jobData{
		BaseVM:  viewdata.NewBaseVM(r, job.Title, "/careers"),
		Job:     *job,
		Closed:  job.DeadlinePassed(time.Now()),
		Applied: query.Get(r, "applied") == "1",
	}
	templates.Render(w, r, "careers_job", data)
}

// loadJob resolves the {id} URL parameter to a job, rendering the
// appropriate error page when the id is malformed or unknown.
func (h *Handler) loadJob(w http.ResponseWriter, r *http.Request) (*models.Job, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That job listing does not exist.", "/careers")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	job, err := jobstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That job listing does not exist.", "/careers")
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load job failed", err, "Unable to load the job listing.", "/careers")
		return nil, false
	}
	return job, true
}
