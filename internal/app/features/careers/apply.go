// internal/app/features/careers/apply.go
package careers

import (
	"context"
	"net/http"
	"strings"
	"time"

	applicationstore "github.com/kstargroup/kstarweb/internal/app/store/applications"
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/limits"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// applyInput defines validation rules for a job application.
type applyInput struct {
	Name  string `validate:"required,max=200" label:"Full name"`
	Email string `validate:"required,email,max=320" label:"Email"`
	Phone string `validate:"max=50" label:"Phone"`
}

type applyData struct {
	formutil.Base
	Job   models.Job
	Name  string
	Email string
	Phone string
}

// ServeApply renders the application form for a job.
// GET /careers/{id}/apply
func (h *Handler) ServeApply(w http.ResponseWriter, r *http.Request) {
	job, ok := h.loadJob(w, r)
	if !ok {
		return
	}
	if job.DeadlinePassed(time.Now()) {
		http.Redirect(w, r, "/careers/"+job.ID.Hex(), http.StatusSeeOther)
		return
	}

	data := applyData{Job: *job}
	if u, signedIn := auth.CurrentUser(r); signedIn {
		data.Name = u.Name
		data.Email = u.Email
	}
	formutil.SetBase(&data.Base, r, "Apply: "+job.Title, "/careers/"+job.ID.Hex())

	templates.Render(w, r, "careers_apply", data)
}

// HandleApply processes the application form submission, storing the résumé
// before the application document is inserted so the document only ever
// references a durable object (or none at all).
// POST /careers/{id}/apply
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	job, ok := h.loadJob(w, r)
	if !ok {
		return
	}
	backURL := "/careers/" + job.ID.Hex()

	if job.DeadlinePassed(time.Now()) {
		http.Redirect(w, r, backURL, http.StatusSeeOther)
		return
	}

	// Bound the whole request body; the résumé cap plus room for the other
	// form fields.
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxResumeSize+limits.MaxFormMemory)
	if err := r.ParseMultipartForm(limits.MaxFormMemory); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse application form failed", err, "The submission was too large or malformed.", backURL)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))

	renderWithError := func(msg string) {
		data := applyData{
			Job:   *job,
			Name:  name,
			Email: email,
			Phone: phone,
		}
		formutil.SetBase(&data.Base, r, "Apply: "+job.Title, backURL)
		data.SetError(msg)
		templates.Render(w, r, "careers_apply", data)
	}

	input := applyInput{Name: name, Email: email, Phone: phone}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	appStore := applicationstore.New(h.DB)

	already, err := appStore.HasApplied(ctx, job.ID, email)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "check existing application failed", err, "Unable to submit your application.", backURL)
		return
	}
	if already {
		renderWithError("You have already applied for this position.")
		return
	}

	// Résumé is optional; when present it is size- and type-checked and
	// written to storage first.
	var resumePath, resumeFileName string
	file, hdr, err := r.FormFile("resume")
	switch err {
	case nil:
		defer file.Close()

		if hdr.Size > limits.MaxResumeSize {
			renderWithError("The résumé file is too large (5 MB maximum).")
			return
		}
		if !limits.AllowedResumeFile(hdr.Filename) {
			renderWithError("Please upload your résumé as a PDF or Word document.")
			return
		}

		info, upErr := uploadResume(ctx, h.Storage, hdr.Filename, file, hdr.Size, limits.ResumeContentType(hdr.Filename))
		if upErr != nil {
			h.ErrLog.LogServerError(w, r, "résumé upload failed", upErr, "Unable to store your résumé. Please try again.", backURL)
			return
		}
		resumePath = info.Path
		resumeFileName = info.FileName

	case http.ErrMissingFile:
		// fine, résumé is optional

	default:
		h.ErrLog.LogBadRequest(w, r, "read résumé upload failed", err, "Unable to read the résumé upload.", backURL)
		return
	}

	app := models.JobApplication{
		JobID:          job.ID,
		JobTitle:       job.Title,
		ApplicantName:  name,
		ApplicantEmail: email,
		ApplicantPhone: phone,
		ResumePath:     resumePath,
		ResumeFileName: resumeFileName,
	}
	created, err := appStore.Create(ctx, app)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create application failed", err, "Unable to submit your application.", backURL)
		return
	}

	// Best-effort confirmation mail; a send failure never blocks the flow.
	if h.Mail != nil {
		if err := h.Mail.Send(mailer.ApplicationReceived(name, email, job.Title)); err != nil {
			h.Log.Warn("application confirmation mail failed",
				zap.Error(err),
				zap.String("application_id", created.ID.Hex()))
		}
	}

	http.Redirect(w, r, backURL+"?applied=1", http.StatusSeeOther)
}
