// internal/app/features/pages/public.go
package pages

import (
	"context"
	"html/template"
	"net/http"

	pagestore "github.com/kstargroup/kstarweb/internal/app/store/pages"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
)

type pageData struct {
	viewdata.BaseVM
	Heading string
	// Body is stored sanitized; rendering it unescaped is safe.
	Body     template.HTML
	Authored bool
}

// servePage returns a handler for one well-known content page. A page that
// has not been authored yet renders a friendly placeholder rather than a 404.
func (h *Handler) servePage(slug, fallbackTitle string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		data := pageData{Heading: fallbackTitle}

		p, err := pagestore.New(h.DB).GetBySlug(ctx, slug)
		switch {
		case err == nil:
			data.Heading = p.Title
			data.Body = template.HTML(p.BodyHTML)
			data.Authored = true
		case err == mongo.ErrNoDocuments:
			// placeholder rendered below
		default:
			h.ErrLog.LogServerError(w, r, "load page failed", err, "Unable to load this page.", "/")
			return
		}

		data.BaseVM = viewdata.NewBaseVM(r, data.Heading, "/")
		templates.Render(w, r, "content_page", data)
	}
}
