// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/Outlyer-Space/quantum/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the service depends on, most notably
// the unique auth.email index that makes email an enforced identity key.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.QuantumMongoDatabase, logger)
}
