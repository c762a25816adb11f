// internal/app/features/signup/handler.go
package signup

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	userstore "github.com/kstargroup/kstarweb/internal/app/store/users"
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/kstargroup/kstarweb/internal/app/system/authutil"
	"github.com/kstargroup/kstarweb/internal/app/system/formutil"
	"github.com/kstargroup/kstarweb/internal/app/system/inputval"
	"github.com/kstargroup/kstarweb/internal/app/system/timeouts"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns self-service account creation. Accounts created here always
// get the "user" role; admins are promoted separately.
type Handler struct {
	DB         *mongo.Database
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs a signup Handler.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, SessionMgr: sm, Log: logger, ErrLog: errLog}
}

// Routes mounts the signup flow (typically at "/signup").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleSignup)
	return r
}

type signupInput struct {
	FullName string `validate:"required,max=200" label:"Full name"`
	Email    string `validate:"required,email,max=320" label:"Email"`
	Password string `validate:"required,min=8,max=200" label:"Password"`
}

type formData struct {
	formutil.Base
	FullName string
	Email    string
}

// ServeForm handles GET /signup.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{}
	formutil.SetBase(&data.Base, r, "Create an account", "/")
	templates.Render(w, r, "signup", data)
}

// HandleSignup creates the account and signs the new user in.
// POST /signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse signup form failed", err, "Invalid form submission.", "/signup")
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	renderWithError := func(msg string) {
		data := formData{FullName: fullName, Email: email}
		formutil.SetBase(&data.Base, r, "Create an account", "/")
		data.SetError(msg)
		templates.Render(w, r, "signup", data)
	}

	input := signupInput{FullName: fullName, Email: email, Password: password}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash password failed", err, "Unable to create the account. Please try again.", "/signup")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := userstore.New(h.DB).Create(ctx, models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			renderWithError("An account with this email already exists. Try signing in instead.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create user failed", err, "Unable to create the account. Please try again.", "/signup")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, user.ID.Hex()); err != nil {
		h.ErrLog.LogServerError(w, r, "start session failed", err, "Account created. Please sign in.", "/login")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
