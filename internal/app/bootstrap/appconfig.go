// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS ports,
// TLS, logging level, environment). AppConfig is everything specific to
// the mission role service itself.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// RolesFile optionally overrides the built-in role catalog with a JSON
	// file. Blank means the built-in catalog.
	RolesFile string

	// Build metadata served by /api/version. Commit falls back to the
	// binary's embedded VCS revision when blank.
	Version   string
	GitBranch string
	GitCommit string
}
