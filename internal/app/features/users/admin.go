// internal/app/features/users/admin.go
package users

import (
	"context"
	"net/http"
	"net/url"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	userstore "github.com/kstargroup/kstarweb/internal/app/store/users"
	"github.com/kstargroup/kstarweb/internal/app/system/authz"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/normalize"
	"github.com/kstargroup/kstarweb/internal/app/system/paging"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRow struct {
	models.User
	IsSelf bool
}

type listData struct {
	viewdata.BaseVM
	Users   []userRow
	Query   string
	Total   int64
	Roles   []string
	Page    int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

// ServeList handles GET /admin/users (optionally ?q=search).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)
	q := normalize.QueryParam(query.Get(r, "q"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	us := userstore.New(h.DB)

	filter := bson.M{}
	if q != "" {
		qFold := text.Fold(q)
		filter["$or"] = bson.A{
			bson.M{"full_name_ci": bson.M{"$regex": "^" + qFold, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": "^" + q, "$options": "i"}},
		}
	}

	total, err := us.Count(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count users failed", err, "Unable to load accounts.", navigation.AdminBackURL)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(start - 1)).
		SetLimit(int64(paging.PageSize + 1))
	found, err := us.Find(ctx, filter, opts)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err, "Unable to load accounts.", navigation.AdminBackURL)
		return
	}
	show, res := paging.Trim(len(found), start)
	found = found[:show]

	_, _, selfID, _ := authz.UserCtx(r)
	rows := make([]userRow, 0, len(found))
	for _, u := range found {
		rows = append(rows, userRow{User: u, IsSelf: u.ID == selfID})
	}

	base := navigation.AdminUsersBackURL
	if q != "" {
		base += "?q=" + url.QueryEscape(q)
	}

	data := listData{
		BaseVM:  viewdata.NewBaseVM(r, "Accounts", navigation.AdminBackURL),
		Users:   rows,
		Query:   q,
		Total:   total,
		Roles:   []string{models.RoleAdmin, models.RoleUser},
		Page:    start/paging.PageSize + 1,
		HasPrev: res.HasPrev,
		HasNext: res.HasNext,
		PrevURL: navigation.StartURL(base, paging.PrevStart(start)),
		NextURL: navigation.StartURL(base, paging.NextStart(start)),
	}
	templates.Render(w, r, "admin_users", data)
}

// HandleSetRole changes an account's role. Admins cannot change their own
// role, which keeps at least the acting admin in place.
// POST /admin/users/{id}/role
func (h *Handler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	target, ok := h.loadUser(w, r)
	if !ok {
		return
	}

	_, _, selfID, _ := authz.UserCtx(r)
	if target.ID == selfID {
		uierrors.RenderForbidden(w, r, "You cannot change your own role.", navigation.AdminUsersBackURL)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse role form failed", err, "Invalid form submission.", navigation.AdminUsersBackURL)
		return
	}
	role := normalize.Role(r.FormValue("role"))
	if !models.ValidRole(role) {
		uierrors.RenderBadRequest(w, r, "Unknown role.", navigation.AdminUsersBackURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := userstore.New(h.DB).UpdateRole(ctx, target.ID, role); err != nil {
		h.ErrLog.LogServerError(w, r, "update role failed", err, "Unable to update the account.", navigation.AdminUsersBackURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminUsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete removes an account. Admins cannot delete themselves.
// POST /admin/users/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	target, ok := h.loadUser(w, r)
	if !ok {
		return
	}

	_, _, selfID, _ := authz.UserCtx(r)
	if target.ID == selfID {
		uierrors.RenderForbidden(w, r, "You cannot delete your own account.", navigation.AdminUsersBackURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := userstore.New(h.DB).Delete(ctx, target.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "delete user failed", err, "Unable to delete the account.", navigation.AdminUsersBackURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminUsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) loadUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That account does not exist.", navigation.AdminUsersBackURL)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That account does not exist.", navigation.AdminUsersBackURL)
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load user failed", err, "Unable to load the account.", navigation.AdminUsersBackURL)
		return nil, false
	}
	return u, true
}
