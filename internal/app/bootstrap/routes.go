// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	clockfeature "github.com/Outlyer-Space/quantum/internal/app/features/clock"
	healthfeature "github.com/Outlyer-Space/quantum/internal/app/features/health"
	missionsfeature "github.com/Outlyer-Space/quantum/internal/app/features/missions"
	versionfeature "github.com/Outlyer-Space/quantum/internal/app/features/version"
	"github.com/Outlyer-Space/quantum/internal/app/system/rolecatalog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The mission/role API is mounted under
// /api, the health check under /health, and the operator console's static
// assets under /static.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	devMode := coreCfg.Env == "dev"

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.QuantumMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets for the browser console
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Mission membership and role API
	missionsHandler := missionsfeature.NewHandler(
		deps.QuantumMongoDatabase, rolecatalog.Current(), devMode, logger)
	r.Mount("/api", missionsfeature.Routes(missionsHandler))

	// Build/version metadata for the about dialog
	versionHandler := versionfeature.NewHandler(versionfeature.Info{
		Version: appCfg.Version,
		Branch:  appCfg.GitBranch,
		Commit:  appCfg.GitCommit,
	}, logger)
	r.Mount("/api/version", versionfeature.Routes(versionHandler))

	// Mission clock for the console's UTC display
	clockHandler := clockfeature.NewHandler(logger)
	r.Mount("/api/time", clockfeature.Routes(clockHandler))

	return r, nil
}
