// internal/app/features/contact/admin.go
package contact

import (
	"context"
	"net/http"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	contactstore "github.com/kstargroup/kstarweb/internal/app/store/contacts"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/paging"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type inboxData struct {
	viewdata.BaseVM
	Submissions []models.ContactSubmission
	StarredOnly bool
	Unread      int64
	Total       int64
	Page        int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
}

type submissionData struct {
	viewdata.BaseVM
	Submission models.ContactSubmission
}

// ServeInbox handles GET /admin/contacts (optionally ?starred=1).
// Authorization: RequireRole("admin") middleware in routes.go.
func (h *Handler) ServeInbox(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)
	starredOnly := query.Get(r, "starred") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cs := contactstore.New(h.DB)

	total, err := cs.Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count contacts failed", err, "Unable to load the inbox.", navigation.AdminBackURL)
		return
	}
	unread, err := cs.CountUnread(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count unread contacts failed", err, "Unable to load the inbox.", navigation.AdminBackURL)
		return
	}

	subs, err := cs.ListNewestFirst(ctx, starredOnly, start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list contacts failed", err, "Unable to load the inbox.", navigation.AdminBackURL)
		return
	}
	show, res := paging.Trim(len(subs), start)
	subs = subs[:show]

	base := navigation.AdminContactsURL
	if starredOnly {
		base += "?starred=1"
	}

	data := inboxData{
		BaseVM:      viewdata.NewBaseVM(r, "Contact inbox", navigation.AdminBackURL),
		Submissions: subs,
		StarredOnly: starredOnly,
		Unread:      unread,
		Total:       total,
		Page:        start/paging.PageSize + 1,
		HasPrev:     res.HasPrev,
		HasNext:     res.HasNext,
		PrevURL:     navigation.StartURL(base, paging.PrevStart(start)),
		NextURL:     navigation.StartURL(base, paging.NextStart(start)),
	}
	templates.Render(w, r, "admin_contacts", data)
}

// ServeSubmission handles GET /admin/contacts/{id}. Opening a submission
// marks it read; the write is filtered on is_read=false so only the first
// open changes the document.
func (h *Handler) ServeSubmission(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.loadSubmission(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !sub.IsRead {
		if _, err := contactstore.New(h.DB).MarkRead(ctx, sub.ID); err != nil {
			h.Log.Warn("mark contact read failed", zap.Error(err), zap.String("id", sub.ID.Hex()))
		} else {
			sub.IsRead = true
		}
	}

	data := submissionData{
		BaseVM:     viewdata.NewBaseVM(r, sub.Subject, navigation.AdminContactsURL),
		Submission: *sub,
	}
	templates.Render(w, r, "admin_contact_view", data)
}

// HandleSetStarred toggles the star on a submission.
// POST /admin/contacts/{id}/star with starred=0|1
func (h *Handler) HandleSetStarred(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.loadSubmission(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse star form failed", err, "Invalid form submission.", navigation.AdminContactsURL)
		return
	}
	starred := r.FormValue("starred") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := contactstore.New(h.DB).SetStarred(ctx, sub.ID, starred); err != nil {
		h.ErrLog.LogServerError(w, r, "set contact starred failed", err, "Unable to update the submission.", navigation.AdminContactsURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminContactsURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete removes a submission.
// POST /admin/contacts/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.loadSubmission(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := contactstore.New(h.DB).Delete(ctx, sub.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "delete contact failed", err, "Unable to delete the submission.", navigation.AdminContactsURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminContactsURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) loadSubmission(w http.ResponseWriter, r *http.Request) (*models.ContactSubmission, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That submission does not exist.", navigation.AdminContactsURL)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sub, err := contactstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That submission does not exist.", navigation.AdminContactsURL)
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load contact failed", err, "Unable to load the submission.", navigation.AdminContactsURL)
		return nil, false
	}
	return sub, true
}
