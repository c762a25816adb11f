// internal/app/features/news/public.go
package news

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	newsstore "github.com/kstargroup/kstarweb/internal/app/store/news"
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

type listData struct {
	viewdata.BaseVM
	Items      []models.NewsEvent
	TypeFilter string
	Page       int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
}

type itemData struct {
	viewdata.BaseVM
	Item models.NewsEvent
	// Content is stored pre-sanitized; rendered as HTML here.
	Content template.HTML
}

// ServeList handles GET /news (optionally ?type=News or ?type=Event).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	start := paging.ParseStart(r)

	typeFilter := query.Get(r, "type")
	if typeFilter != "" && !models.ValidNewsType(typeFilter) {
		typeFilter = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := newsstore.New(h.DB).ListNewestFirst(ctx, typeFilter, start-1, paging.PageSize+1)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list news failed", err, "Unable to load news and events.", "/")
		return
	}
	show, res := paging.Trim(len(items), start)
	items = items[:show]

	base := "/news"
	if typeFilter != "" {
		base += "?type=" + typeFilter
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "News & Events", "/"),
		Items:      items,
		TypeFilter: typeFilter,
		Page:       start/paging.PageSize + 1,
		HasPrev:    res.HasPrev,
		HasNext:    res.HasNext,
		PrevURL:    navigation.StartURL(base, paging.PrevStart(start)),
		NextURL:    navigation.StartURL(base, paging.NextStart(start)),
	}
	templates.Render(w, r, "news_list", data)
}

// ServeItem handles GET /news/{id}.
func (h *Handler) ServeItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r, "/news")
	if !ok {
		return
	}

	data := itemData{
		BaseVM:  viewdata.NewBaseVM(r, item.Title, "/news"),
		Item:    *item,
		Content: template.HTML(item.Content),
	}
	templates.Render(w, r, "news_item", data)
}

func (h *Handler) loadItem(w http.ResponseWriter, r *http.Request, backURL string) (*models.NewsEvent, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That item does not exist.", backURL)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := newsstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That item does not exist.", backURL)
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load news item failed", err, "Unable to load the item.", backURL)
		return nil, false
	}
	return item, true
}
