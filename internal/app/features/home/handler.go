// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	jobstore "github.com/kstargroup/kstarweb/internal/app/store/jobs"
	newsstore "github.com/kstargroup/kstarweb/internal/app/store/news"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// teaserCount caps the landing-page news and jobs sections.
const teaserCount = 3

// Handler serves the public landing page.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a home Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}

// Routes mounts the landing page at "/".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHome)
	return r
}

type homeData struct {
	viewdata.BaseVM
	News     []models.NewsEvent
	OpenJobs []models.Job
}

// ServeHome handles GET /. Closed job listings are filtered out of the
// teaser; loading more than the teaser count keeps the section full when
// recent listings have passed their deadline.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	news, err := newsstore.New(h.DB).ListNewestFirst(ctx, "", 0, teaserCount)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list news for home failed", err, "Unable to load the page.", "/")
		return
	}

	jobs, err := jobstore.New(h.DB).ListNewestFirst(ctx, 0, teaserCount*4)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list jobs for home failed", err, "Unable to load the page.", "/")
		return
	}
	now := time.Now()
	open := make([]models.Job, 0, teaserCount)
	for _, j := range jobs {
		if j.DeadlinePassed(now) {
			continue
		}
		open = append(open, j)
		if len(open) == teaserCount {
			break
		}
	}

	data := homeData{
		BaseVM:   viewdata.NewBaseVM(r, models.DefaultSiteName, "/"),
		News:     news,
		OpenJobs: open,
	}
	templates.Render(w, r, "home", data)
}
