// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// body limits); AppConfig is everything specific to this application. The
// struct is passed to most lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // secret key for signing session cookies (must be strong in production)
	SessionName   string // cookie name
	SessionDomain string // cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte secret for gorilla/csrf token signing

	// Résumé storage configuration
	StorageType      string // storage backend: "local" or "s3"
	StorageLocalPath string // local storage path (e.g., "./uploads/resumes")
	StorageLocalURL  string // URL prefix for serving local files

	// Outgoing mail. With no SendGrid key the app logs mail to the console,
	// which is the development setup.
	SendgridKey  string
	MailFrom     string // from address (e.g., noreply@kstargroup.org)
	MailFromName string // from display name
	InboxEmail   string // receives contact-form notifications

	// Assistant provider (OpenAI-compatible API)
	LLMAPIBase    string
	LLMAPIKey     string
	LLMChatModel  string
	LLMImageModel string

	// Admin bootstrap: this account is promoted to admin on startup.
	AdminEmail string

	// Base URL used in email links.
	BaseURL string
}
