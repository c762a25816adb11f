// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	applicationstore "github.com/kstargroup/kstarweb/internal/app/store/applications"
	contactstore "github.com/kstargroup/kstarweb/internal/app/store/contacts"
	jobstore "github.com/kstargroup/kstarweb/internal/app/store/jobs"
	userstore "github.com/kstargroup/kstarweb/internal/app/store/users"
	volunteerstore "github.com/kstargroup/kstarweb/internal/app/store/volunteers"
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// recentCount caps the recent-activity lists on the dashboard.
const recentCount = 5

// Handler serves the admin landing page.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}

// Routes mounts the dashboard (typically at "/admin").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeDashboard)
	})

	return r
}

// Stats are the dashboard counters.
type Stats struct {
	OpenJobs            int64
	PendingApplications int64
	UnreadContacts      int64
	Volunteers          int64
	Users               int64
}

type dashboardData struct {
	viewdata.BaseVM
	Stats              Stats
	RecentApplications []models.JobApplication
	RecentContacts     []models.ContactSubmission
}

// ServeDashboard handles GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	stats, err := h.loadStats(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard stats failed", err, "Unable to load the dashboard.", "/")
		return
	}

	apps, err := applicationstore.New(h.DB).ListNewestFirst(ctx, nil, 0, recentCount)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list recent applications failed", err, "Unable to load the dashboard.", "/")
		return
	}
	contacts, err := contactstore.New(h.DB).ListNewestFirst(ctx, false, 0, recentCount)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list recent contacts failed", err, "Unable to load the dashboard.", "/")
		return
	}

	data := dashboardData{
		BaseVM:             viewdata.NewBaseVM(r, "Dashboard", "/"),
		Stats:              stats,
		RecentApplications: apps,
		RecentContacts:     contacts,
	}
	templates.Render(w, r, "dashboard", data)
}

// loadStats gathers the counters. The deadline is stored as a calendar date
// string, so "open" is a lexicographic comparison against today.
func (h *Handler) loadStats(ctx context.Context) (Stats, error) {
	var s Stats
	var err error

	today := time.Now().UTC().Format(models.DeadlineLayout)
	if s.OpenJobs, err = jobstore.New(h.DB).Count(ctx, bson.M{
		"application_deadline": bson.M{"$gte": today},
	}); err != nil {
		return s, err
	}
	if s.PendingApplications, err = applicationstore.New(h.DB).Count(ctx, bson.M{
		"status": models.StatusPending,
	}); err != nil {
		return s, err
	}
	if s.UnreadContacts, err = contactstore.New(h.DB).CountUnread(ctx); err != nil {
		return s, err
	}
	if s.Volunteers, err = volunteerstore.New(h.DB).Count(ctx, bson.M{}); err != nil {
		return s, err
	}
	if s.Users, err = userstore.New(h.DB).Count(ctx, bson.M{}); err != nil {
		return s, err
	}
	return s, nil
}
