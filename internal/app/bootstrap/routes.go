// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"net/http"
	"net/mail"
	"time"

	assistantfeature "github.com/kstargroup/kstarweb/internal/app/features/assistant"
	careersfeature "github.com/kstargroup/kstarweb/internal/app/features/careers"
	contactfeature "github.com/kstargroup/kstarweb/internal/app/features/contact"
	dashboardfeature "github.com/kstargroup/kstarweb/internal/app/features/dashboard"
	errorsfeature "github.com/kstargroup/kstarweb/internal/app/features/errors"
	healthfeature "github.com/kstargroup/kstarweb/internal/app/features/health"
	homefeature "github.com/kstargroup/kstarweb/internal/app/features/home"
	loginfeature "github.com/kstargroup/kstarweb/internal/app/features/login"
	logoutfeature "github.com/kstargroup/kstarweb/internal/app/features/logout"
	newsfeature "github.com/kstargroup/kstarweb/internal/app/features/news"
	pagesfeature "github.com/kstargroup/kstarweb/internal/app/features/pages"
	signupfeature "github.com/kstargroup/kstarweb/internal/app/features/signup"
	usersfeature "github.com/kstargroup/kstarweb/internal/app/features/users"
	volunteerfeature "github.com/kstargroup/kstarweb/internal/app/features/volunteer"
	userstore "github.com/kstargroup/kstarweb/internal/app/store/users"
	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"github.com/kstargroup/kstarweb/internal/app/system/llm"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/kstargroup/kstarweb/internal/app/system/ratelimit"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, boots
// the template engine, builds the shared mailer/storage/assistant backends,
// and mounts every feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on
	// each request. Role changes and deleted accounts take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Shared backends.
	errLog := errorsfeature.NewErrorLogger(logger)
	resumeStore, err := buildStorage(appCfg)
	if err != nil {
		logger.Error("storage init failed", zap.Error(err))
		return nil, err
	}
	siteMailer := buildMailer(appCfg, logger)
	assistantClient := llm.New(llm.Config{
		APIBase:    appCfg.LLMAPIBase,
		APIKey:     appCfg.LLMAPIKey,
		ChatModel:  appCfg.LLMChatModel,
		ImageModel: appCfg.LLMImageModel,
	}, logger)

	// Rate limits: public intake forms take 10 submissions per IP per
	// minute, the assistant 20 requests per IP per minute.
	formLimiter := ratelimit.New(10, time.Minute)
	assistantLimiter := ratelimit.New(20, time.Minute)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for every browser-facing form.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	pagesHandler := pagesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	pagesfeature.PublicRoutes(r, pagesHandler)

	newsHandler := newsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/news", newsfeature.Routes(newsHandler))

	careersHandler := careersfeature.NewHandler(deps.MongoDatabase, resumeStore, siteMailer, errLog, logger)
	r.Mount("/careers", careersfeature.Routes(careersHandler, sessionMgr))

	contactHandler := contactfeature.NewHandler(deps.MongoDatabase, siteMailer, appCfg.InboxEmail, errLog, logger)
	r.Group(func(pr chi.Router) {
		pr.Use(formLimiter.Middleware)
		pr.Mount("/contact", contactfeature.Routes(contactHandler))
	})

	volunteerHandler := volunteerfeature.NewHandler(deps.MongoDatabase, siteMailer, errLog, logger)
	r.Group(func(pr chi.Router) {
		pr.Use(formLimiter.Middleware)
		pr.Mount("/volunteer", volunteerfeature.Routes(volunteerHandler))
	})

	// Assistant JSON endpoints
	assistantHandler := assistantfeature.NewHandler(assistantClient, logger)
	r.Group(func(pr chi.Router) {
		pr.Use(assistantLimiter.Middleware)
		pr.Mount("/assistant", assistantfeature.Routes(assistantHandler))
	})

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	signupHandler := signupfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Admin back office
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/admin", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	adminCareers := careersfeature.NewAdminHandler(deps.MongoDatabase, resumeStore, errLog, logger)
	r.Mount("/admin/jobs", careersfeature.AdminRoutes(adminCareers, sessionMgr))
	r.Mount("/admin/applications", careersfeature.ApplicationRoutes(adminCareers, sessionMgr))

	r.Mount("/admin/news", newsfeature.AdminRoutes(newsHandler, sessionMgr))
	r.Mount("/admin/contacts", contactfeature.AdminRoutes(contactHandler, sessionMgr))
	r.Mount("/admin/volunteers", volunteerfeature.AdminRoutes(volunteerHandler, sessionMgr))
	r.Mount("/admin/pages", pagesfeature.AdminRoutes(pagesHandler, sessionMgr))

	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/admin/users", usersfeature.Routes(usersHandler, sessionMgr))

	return r, nil
}

// buildStorage constructs the résumé blob store from config.
func buildStorage(appCfg AppConfig) (storage.Store, error) {
	switch appCfg.StorageType {
	case "local":
		return storage.NewLocal(storage.LocalConfig{
			BasePath: appCfg.StorageLocalPath,
			BaseURL:  appCfg.StorageLocalURL,
		})
	default:
		return nil, fmt.Errorf("unsupported storage_type %q", appCfg.StorageType)
	}
}

// buildMailer picks SendGrid when a key is configured and falls back to
// console logging otherwise.
func buildMailer(appCfg AppConfig, logger *zap.Logger) mailer.Mailer {
	from := mail.Address{Name: appCfg.MailFromName, Address: appCfg.MailFrom}
	if appCfg.SendgridKey != "" {
		return mailer.NewSendgrid(appCfg.SendgridKey, from, models.DefaultSiteName, logger)
	}
	logger.Info("no SendGrid key configured, mail goes to the console")
	return mailer.NewConsole(logger)
}
