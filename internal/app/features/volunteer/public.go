// internal/app/features/volunteer/public.go
package volunteer

import (
	"context"
	"net/http"
	"strings"

	volunteerstore "github.com/kstargroup/kstarweb/internal/app/store/volunteers"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// registerInput defines validation rules for the volunteer form.
type registerInput struct {
	Name         string `validate:"required,max=200" label:"Name"`
	Email        string `validate:"required,email,max=320" label:"Email"`
	Phone        string `validate:"omitempty,max=50" label:"Phone"`
	Type         string `validate:"required,oneof=Volunteer Partner Supporter" label:"I want to join as"`
	Skills       string `validate:"omitempty,max=2000" label:"Skills"`
	Availability string `validate:"omitempty,max=1000" label:"Availability"`
}

type formData struct {
	formutil.Base
	Name         string
	Email        string
	Phone        string
	Type         string
	Skills       string
	Availability string
	Types        []string
	Registered   bool
}

// ServeForm handles GET /volunteer.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		Types:      models.VolunteerTypes,
		Registered: query.Get(r, "registered") == "1",
	}
	formutil.SetBase(&data.Base, r, "Get involved", "/")
	templates.Render(w, r, "volunteer", data)
}

// HandleRegister processes the volunteer form. The registration is stored
// first; the welcome mail is best-effort and never blocks the visitor.
// POST /volunteer
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse volunteer form failed", err, "Invalid form submission.", "/volunteer")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	regType := strings.TrimSpace(r.FormValue("type"))
	skills := strings.TrimSpace(r.FormValue("skills"))
	availability := strings.TrimSpace(r.FormValue("availability"))

	renderWithError := func(msg string) {
		data := formData{
			Name:         name,
			Email:        email,
			Phone:        phone,
			Type:         regType,
			Skills:       skills,
			Availability: availability,
			Types:        models.VolunteerTypes,
		}
		formutil.SetBase(&data.Base, r, "Get involved", "/")
		data.SetError(msg)
		templates.Render(w, r, "volunteer", data)
	}

	input := registerInput{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Type:         regType,
		Skills:       skills,
		Availability: availability,
	}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reg := models.VolunteerRegistration{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Type:         regType,
		Skills:       skills,
		Availability: availability,
	}
	created, err := volunteerstore.New(h.DB).Create(ctx, reg)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create volunteer registration failed", err, "Unable to submit your registration. Please try again.", "/volunteer")
		return
	}

	if h.Mail != nil {
		if err := h.Mail.Send(mailer.VolunteerWelcome(name, email, regType)); err != nil {
			h.Log.Warn("volunteer welcome mail failed",
				zap.Error(err),
				zap.String("registration_id", created.ID.Hex()))
		}
	}

	http.Redirect(w, r, "/volunteer?registered=1", http.StatusSeeOther)
}
