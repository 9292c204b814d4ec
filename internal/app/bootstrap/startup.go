// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/Outlyer-Space/quantum/internal/app/system/rolecatalog"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. The
// role catalog is loaded here: built-in by default, or from roles_file.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	cat, err := rolecatalog.Load(appCfg.RolesFile)
	if err != nil {
		logger.Error("role catalog load failed",
			zap.String("roles_file", appCfg.RolesFile),
			zap.Error(err))
		return err
	}
	rolecatalog.Use(cat)
	logger.Info("role catalog loaded", zap.Int("roles", cat.Len()))
	return nil
}
