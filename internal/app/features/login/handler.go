// internal/app/features/login/handler.go
package login

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
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the email/password sign-in flow.
type Handler struct {
	DB         *mongo.Database
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs a login Handler.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, SessionMgr: sm, Log: logger, ErrLog: errLog}
}

// Routes mounts the login flow (typically at "/login").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleLogin)
	return r
}

type loginInput struct {
	Email    string `validate:"required,email,max=320" label:"Email"`
	Password string `validate:"required,max=200" label:"Password"`
}

type formData struct {
	formutil.Base
	Email     string
	ReturnURL string
}

// ServeForm handles GET /login.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{ReturnURL: query.Get(r, "return")}
	formutil.SetBase(&data.Base, r, "Sign in", "/")
	templates.Render(w, r, "login", data)
}

// HandleLogin verifies credentials and starts a session. Unknown email and
// wrong password produce the same message so the form does not leak which
// accounts exist.
// POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form submission.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	renderWithError := func(msg string) {
		data := formData{Email: email, ReturnURL: returnURL}
		formutil.SetBase(&data.Base, r, "Sign in", "/")
		data.SetError(msg)
		templates.Render(w, r, "login", data)
	}

	input := loginInput{Email: email, Password: password}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	const badCredentials = "Email or password is incorrect."

	user, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			renderWithError(badCredentials)
			return
		}
		h.ErrLog.LogServerError(w, r, "load user for login failed", err, "Unable to sign in. Please try again.", "/login")
		return
	}

	if !authutil.CheckPassword(password, user.PasswordHash) {
		h.Log.Info("failed login attempt", zap.String("email", user.Email))
		renderWithError(badCredentials)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, user.ID.Hex()); err != nil {
		h.ErrLog.LogServerError(w, r, "start session failed", err, "Unable to sign in. Please try again.", "/login")
		return
	}

	dest := urlutil.SafeReturn(returnURL, "", "/")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
