// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: KSTARWEB_MONGO_URI, KSTARWEB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
// Placeholder secrets for local development. ValidateConfig rejects both
// when the environment is "prod".
const (
	devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"
	devCSRFKey    = "dev-only-csrf-key-32-bytes-long!"
)

var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "kstarweb", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "kstarweb-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "csrf_key", Default: devCSRFKey, Desc: "CSRF token signing key (32 bytes, must be strong in production)"},

	// Résumé storage
	{Name: "storage_type", Default: "local", Desc: "Storage backend for uploaded files"},
	{Name: "storage_local_path", Default: "./uploads/resumes", Desc: "Local storage path for uploaded files"},
	{Name: "storage_local_url", Default: "/files/resumes", Desc: "URL prefix for serving local files"},

	// Outgoing mail
	{Name: "sendgrid_key", Default: "", Desc: "SendGrid API key (blank logs mail to the console)"},
	{Name: "mail_from", Default: "noreply@kstargroup.org", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Kstar Group", Desc: "From display name"},
	{Name: "inbox_email", Default: "info@kstargroup.org", Desc: "Recipient for contact-form notifications"},

	// Assistant provider
	{Name: "llm_api_base", Default: "https://api.openai.com", Desc: "OpenAI-compatible API base URL"},
	{Name: "llm_api_key", Default: "", Desc: "API key for the assistant provider (blank disables the assistant)"},
	{Name: "llm_chat_model", Default: "gpt-4o-mini", Desc: "Model for assistant chat"},
	{Name: "llm_image_model", Default: "gpt-image-1", Desc: "Model for assistant image generation"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email of the site admin (promoted on startup)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for email links"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, KSTARWEB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KSTARWEB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey: appValues.String("csrf_key"),

		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		SendgridKey:  appValues.String("sendgrid_key"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		InboxEmail:   appValues.String("inbox_email"),

		LLMAPIBase:    appValues.String("llm_api_base"),
		LLMAPIKey:     appValues.String("llm_api_key"),
		LLMChatModel:  appValues.String("llm_chat_model"),
		LLMImageModel: appValues.String("llm_image_model"),

		AdminEmail: appValues.String("admin_email"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked early, before attempting to connect.
// Production additionally requires real secrets instead of the dev defaults.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.StorageType != "local" {
		return fmt.Errorf("storage_type must be 'local', got %q", appCfg.StorageType)
	}

	if len(appCfg.CSRFKey) < 32 {
		return fmt.Errorf("csrf_key must be at least 32 bytes")
	}

	if coreCfg.Env == "prod" {
		if appCfg.SessionKey == devSessionKey {
			return fmt.Errorf("session_key must be changed from the dev default in production")
		}
		if appCfg.CSRFKey == devCSRFKey {
			return fmt.Errorf("csrf_key must be changed from the dev default in production")
		}
	}

	return nil
}
