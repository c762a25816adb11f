// internal/app/features/pages/admin.go
package pages

import (
	"context"
	"net/http"
	"strings"
	"time"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	pagestore "github.com/kstargroup/kstarweb/internal/app/store/pages"
	"github.com/kstargroup/kstarweb/internal/app/system/authz"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/htmlsanitize"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

type pageInput struct {
	Title string `validate:"required,max=300" label:"Title"`
	Body  string `validate:"required,max=100000" label:"Body"`
}

type adminPageRow struct {
	Slug      string
	Title     string
	Authored  bool
	UpdatedAt time.Time
}

type adminListData struct {
	viewdata.BaseVM
	Pages []adminPageRow
}

type editData struct {
	formutil.Base
	Slug      string
	PageTitle string
	Body      string
}

// ServeAdminList handles GET /admin/pages. Every well-known slug is shown
// even before it has been authored.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	authored, err := pagestore.New(h.DB).ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list pages failed", err, "Unable to load pages.", navigation.AdminBackURL)
		return
	}
	bySlug := make(map[string]models.Page, len(authored))
	for _, p := range authored {
		bySlug[p.Slug] = p
	}

	rows := make([]adminPageRow, 0, len(models.PageSlugs))
	for _, slug := range models.PageSlugs {
		row := adminPageRow{Slug: slug, Title: defaultPageTitle(slug)}
		if p, ok := bySlug[slug]; ok {
			row.Title = p.Title
			row.Authored = true
			row.UpdatedAt = p.UpdatedAt
		}
		rows = append(rows, row)
	}

	data := adminListData{
		BaseVM: viewdata.NewBaseVM(r, "Site pages", navigation.AdminBackURL),
		Pages:  rows,
	}
	templates.Render(w, r, "admin_pages", data)
}

// ServeEdit handles GET /admin/pages/{slug}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.knownSlug(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data := editData{Slug: slug, PageTitle: defaultPageTitle(slug)}

	p, err := pagestore.New(h.DB).GetBySlug(ctx, slug)
	switch {
	case err == nil:
		data.PageTitle = p.Title
		data.Body = p.BodyHTML
	case err == mongo.ErrNoDocuments:
		// first authoring of this slug
	default:
		h.ErrLog.LogServerError(w, r, "load page failed", err, "Unable to load the page.", navigation.AdminPagesBackURL)
		return
	}

	formutil.SetBase(&data.Base, r, "Edit page: "+slug, navigation.AdminPagesBackURL)
	templates.Render(w, r, "admin_page_edit", data)
}

// HandleEdit upserts a page. The body is sanitized before it is stored, so
// public rendering can emit it unescaped.
// POST /admin/pages/{slug}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.knownSlug(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse page form failed", err, "Invalid form submission.", navigation.AdminPagesBackURL)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	body := strings.TrimSpace(r.FormValue("body"))

	renderWithError := func(msg string) {
		data := editData{Slug: slug, PageTitle: title, Body: body}
		formutil.SetBase(&data.Base, r, "Edit page: "+slug, navigation.AdminPagesBackURL)
		data.SetError(msg)
		templates.Render(w, r, "admin_page_edit", data)
	}

	input := pageInput{Title: title, Body: body}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	_, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := models.Page{
		Slug:      slug,
		Title:     title,
		BodyHTML:  htmlsanitize.Sanitize(body),
		UpdatedBy: userID,
	}
	if err := pagestore.New(h.DB).Upsert(ctx, page); err != nil {
		h.ErrLog.LogServerError(w, r, "upsert page failed", err, "Unable to save the page.", navigation.AdminPagesBackURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminPagesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) knownSlug(w http.ResponseWriter, r *http.Request) (string, bool) {
	slug := strings.ToLower(chi.URLParam(r, "slug"))
	for _, s := range models.PageSlugs {
		if slug == s {
			return slug, true
		}
	}
	uierrors.RenderNotFound(w, r, "That page does not exist.", navigation.AdminPagesBackURL)
	return "", false
}

func defaultPageTitle(slug string) string {
	switch slug {
	case models.PageSlugAbout:
		return "About us"
	case models.PageSlugCourses:
		return "Courses"
	case models.PageSlugFaculty:
		return "Faculty"
	}
	return slug
}
