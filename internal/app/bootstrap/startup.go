// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/kstargroup/kstarweb/internal/app/resources"
	userstore "github.com/kstargroup/kstarweb/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates), warm caches, or perform
// any app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// Promote the configured admin account. The account must already exist;
	// promotion is idempotent across restarts.
	if appCfg.AdminEmail != "" {
		promoted, err := userstore.New(deps.MongoDatabase).PromoteToAdmin(ctx, appCfg.AdminEmail)
		if err != nil {
			logger.Error("admin promotion failed", zap.Error(err), zap.String("email", appCfg.AdminEmail))
			return err
		}
		if promoted {
			logger.Info("promoted account to admin", zap.String("email", appCfg.AdminEmail))
		}
	}

	return nil
}
