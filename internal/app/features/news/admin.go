// internal/app/features/news/admin.go
package news

import (
	"context"
	"net/http"
	"strings"
	"time"

	newsstore "github.com/kstargroup/kstarweb/internal/app/store/news"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/htmlsanitize"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/navigation"
	"github.com/kstargroup/kstarweb/internal/app/system/paging"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
)

// newsInput defines validation rules shared by the create and edit forms.
type newsInput struct {
	Title    string `validate:"required,max=300" label:"Title"`
	Content  string `validate:"required,max=50000" label:"Content"`
	Date     string `validate:"required,datetime=2006-01-02" label:"Date"`
	Type     string `validate:"required" label:"Type"`
	ImageURL string `validate:"omitempty,url,max=2000" label:"Image URL"`
}

type adminListData struct {
	viewdata.BaseVM
	Items   []models.NewsEvent
	Total   int64
	Page    int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

type newsFormData struct {
	formutil.Base
	ItemID    string
	ItemTitle string
	Content   string
	Date      string
	ItemType  string
	ImageURL  string
	Types     []string
}

// dateLayout is the wire format for the item date form field.
const dateLayout = "2006-01-02"

var newsTypes = []string{models.NewsTypeNews, models.NewsTypeEvent}

// ServeAdminList handles GET /admin/news.
// Authorization: RequireRole("admin") middleware in routes.go.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ns := newsstore.New(h.DB)

	total, err := ns.Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count news failed", err, "Unable to load news.", navigation.AdminBackURL)
		return
	}

	items, err := ns.ListNewestFirst(ctx, "", start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list news failed", err, "Unable to load news.", navigation.AdminBackURL)
		return
	}
	show, res := paging.Trim(len(items), start)
	items = items[:show]

	data := adminListData{
		BaseVM:  viewdata.NewBaseVM(r, "News & Events", navigation.AdminBackURL),
		Items:   items,
		Total:   total,
		Page:    start/paging.PageSize + 1,
		HasPrev: res.HasPrev,
		HasNext: res.HasNext,
		PrevURL: navigation.StartURL(navigation.AdminNewsBackURL, paging.PrevStart(start)),
		NextURL: navigation.StartURL(navigation.AdminNewsBackURL, paging.NextStart(start)),
	}
	templates.Render(w, r, "admin_news", data)
}

// ServeNew renders the "New item" form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newsFormData{
		ItemType: models.NewsTypeNews,
		Date:     time.Now().Format(dateLayout),
		Types:    newsTypes,
	}
	formutil.SetBase(&data.Base, r, "New News/Event", navigation.AdminNewsBackURL)
	templates.Render(w, r, "admin_news_new", data)
}

// HandleCreate processes the new-item form submission. Content is sanitized
// before it is stored.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse news form failed", err, "Invalid form submission.", navigation.AdminNewsBackURL)
		return
	}

	in := readNewsForm(r)

	renderWithError := func(msg string) {
		data := newsFormFromInput("", in)
		formutil.SetBase(&data.Base, r, "New News/Event", navigation.AdminNewsBackURL)
		data.SetError(msg)
		templates.Render(w, r, "admin_news_new", data)
	}

	item, ok := h.validateNewsForm(in, renderWithError)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := newsstore.New(h.DB).Create(ctx, item); err != nil {
		renderWithError("Database error while creating the item.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminNewsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// ServeEdit renders the item edit form.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r, navigation.AdminNewsBackURL)
	if !ok {
		return
	}

	data := newsFormData{
		ItemID:    item.ID.Hex(),
		ItemTitle: item.Title,
		Content:   item.Content,
		Date:      item.Date.Format(dateLayout),
		ItemType:  item.Type,
		ImageURL:  item.ImageURL,
		Types:     newsTypes,
	}
	formutil.SetBase(&data.Base, r, "Edit News/Event", navigation.AdminNewsBackURL)
	templates.Render(w, r, "admin_news_edit", data)
}

// HandleEdit processes the item edit form submission.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r, navigation.AdminNewsBackURL)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse news form failed", err, "Invalid form submission.", navigation.AdminNewsBackURL)
		return
	}

	in := readNewsForm(r)

	renderWithError := func(msg string) {
		data := newsFormFromInput(item.ID.Hex(), in)
		formutil.SetBase(&data.Base, r, "Edit News/Event", navigation.AdminNewsBackURL)
		data.SetError(msg)
		templates.Render(w, r, "admin_news_edit", data)
	}

	mut, ok := h.validateNewsForm(in, renderWithError)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := newsstore.New(h.DB).Update(ctx, item.ID, mut); err != nil {
		renderWithError("Database error while saving the item.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminNewsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete removes a news/event item.
// POST /admin/news/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r, navigation.AdminNewsBackURL)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := newsstore.New(h.DB).Delete(ctx, item.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "delete news item failed", err, "Unable to delete the item.", navigation.AdminNewsBackURL)
		return
	}

	ret := navigation.SafeBackURL(r, navigation.AdminNewsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// validateNewsForm validates the shared form input and builds the model,
// calling renderWithError and returning ok=false on any failure.
func (h *Handler) validateNewsForm(in newsInput, renderWithError func(string)) (models.NewsEvent, bool) {
	if result := inputval.Validate(in); result.HasErrors() {
		renderWithError(result.First())
		return models.NewsEvent{}, false
	}
	if !models.ValidNewsType(in.Type) {
		renderWithError("Please select a valid type.")
		return models.NewsEvent{}, false
	}

	date, err := time.ParseInLocation(dateLayout, in.Date, time.UTC)
	if err != nil {
		renderWithError("Please enter a valid date.")
		return models.NewsEvent{}, false
	}

	return models.NewsEvent{
		Title:    in.Title,
		Content:  htmlsanitize.Sanitize(in.Content),
		Date:     date,
		Type:     in.Type,
		ImageURL: in.ImageURL,
	}, true
}

func readNewsForm(r *http.Request) newsInput {
	return newsInput{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Content:  strings.TrimSpace(r.FormValue("content")),
		Date:     strings.TrimSpace(r.FormValue("date")),
		Type:     strings.TrimSpace(r.FormValue("type")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
	}
}

func newsFormFromInput(id string, in newsInput) newsFormData {
	return newsFormData{
		ItemID:    id,
		ItemTitle: in.Title,
		Content:   in.Content,
		Date:      in.Date,
		ItemType:  in.Type,
		ImageURL:  in.ImageURL,
		Types:     newsTypes,
	}
}
