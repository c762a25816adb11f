// internal/app/features/volunteer/admin.go
package volunteer

import (
	"context"
	"net/http"
	"net/url"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	volunteerstore "github.com/kstargroup/kstarweb/internal/app/store/volunteers"
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
)

type adminListData struct {
	viewdata.BaseVM
	Registrations []models.VolunteerRegistration
	Filter        string
	Types         []string
	Total         int64
	Page          int
	HasPrev       bool
	HasNext       bool
	PrevURL       string
	NextURL       string
}

// ServeAdminList handles GET /admin/volunteers (optionally ?type=Partner).
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)

	regType := query.Get(r, "type")
	if regType != "" && !models.ValidVolunteerType(regType) {
		uierrors.RenderBadRequest(w, r, "Unknown registration type.", navigation.AdminVolunteersURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vs := volunteerstore.New(h.DB)

	filter := bson.M{}
	if regType != "" {
		filter["type"] = regType
	}
	total, err := vs.Count(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count volunteers failed", err, "Unable to load registrations.", navigation.AdminBackURL)
		return
	}

	regs, err := vs.ListNewestFirst(ctx, regType, start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list volunteers failed", err, "Unable to load registrations.", navigation.AdminBackURL)
		return
	}
	show, res := paging.Trim(len(regs), start)
	regs = regs[:show]

	base := navigation.AdminVolunteersURL
	if regType != "" {
		base += "?type=" + url.QueryEscape(regType)
	}

	data := adminListData{
		BaseVM:        viewdata.NewBaseVM(r, "Volunteer registrations", navigation.AdminBackURL),
		Registrations: regs,
		Filter:        regType,
		Types:         models.VolunteerTypes,
		Total:         total,
		Page:          start/paging.PageSize + 1,
		HasPrev:       res.HasPrev,
		HasNext:       res.HasNext,
		PrevURL:       navigation.StartURL(base, paging.PrevStart(start)),
		NextURL:       navigation.StartURL(base, paging.NextStart(start)),
	}
	templates.Render(w, r, "admin_volunteers", data)
}

// HandleDelete removes a registration.
// POST /admin/volunteers/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That registration does not exist.", navigation.AdminVolunteersURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vs := volunteerstore.New(h.DB)
	if _, err := vs.GetByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That registration does not exist.", navigation.AdminVolunteersURL)
			return
		}
		h.ErrLog.LogServerError(w, r, "load volunteer failed", err, "Unable to load the registration.", navigation.AdminVolunteersURL)
		return
	}

	if _, err := vs.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "delete volunteer failed", err, "Unable to delete the registration.", navigation.AdminVolunteersURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminVolunteersURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
