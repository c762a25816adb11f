// internal/app/features/contact/public.go
package contact

import (
	"context"
	"net/http"
	"strings"

	contactstore "github.com/kstargroup/kstarweb/internal/app/store/contacts"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// contactInput defines validation rules for the contact form.
type contactInput struct {
	Name    string `validate:"required,max=200" label:"Name"`
	Email   string `validate:"required,email,max=320" label:"Email"`
	Subject string `validate:"required,max=300" label:"Subject"`
	Message string `validate:"required,max=10000" label:"Message"`
}

type formData struct {
	formutil.Base
	Name    string
	Email   string
	Subject string
	Message string
	Sent    bool
}

// ServeForm handles GET /contact.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{Sent: query.Get(r, "sent") == "1"}
	formutil.SetBase(&data.Base, r, "Contact us", "/")
	templates.Render(w, r, "contact", data)
}

// HandleSubmit processes the contact form. The submission is stored first;
// the notification mail is best-effort and never blocks the visitor.
// POST /contact
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse contact form failed", err, "Invalid form submission.", "/contact")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	subject := strings.TrimSpace(r.FormValue("subject"))
	message := strings.TrimSpace(r.FormValue("message"))

	renderWithError := func(msg string) {
		data := formData{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: message,
		}
		formutil.SetBase(&data.Base, r, "Contact us", "/")
		data.SetError(msg)
		templates.Render(w, r, "contact", data)
	}

	input := contactInput{Name: name, Email: email, Subject: subject, Message: message}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	sub := models.ContactSubmission{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	created, err := contactstore.New(h.DB).Create(ctx, sub)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create contact submission failed", err, "Unable to send your message. Please try again.", "/contact")
		return
	}

	if h.Mail != nil && h.InboxEmail != "" {
		if err := h.Mail.Send(mailer.ContactNotification(h.InboxEmail, name, email, subject, message)); err != nil {
			h.Log.Warn("contact notification mail failed",
				zap.Error(err),
				zap.String("submission_id", created.ID.Hex()))
		}
	}

	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}
