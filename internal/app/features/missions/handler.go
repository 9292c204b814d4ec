// internal/app/features/missions/handler.go
package missions

import (
	userstore "github.com/Outlyer-Space/quantum/internal/app/store/users"
	"github.com/Outlyer-Space/quantum/internal/app/system/rolecatalog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the mission membership and role endpoints: assignment,
// current-role and allowed-roles queries/mutations, per-mission user
// listings, and the role catalog.
type Handler struct {
	DB      *mongo.Database
	Store   *userstore.Store
	Catalog *rolecatalog.Catalog
	Log     *zap.Logger

	// DevMode gates diagnostic detail on 5xx responses.
	DevMode bool
}

// NewHandler constructs a missions Handler.
func NewHandler(db *mongo.Database, cat *rolecatalog.Catalog, devMode bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   userstore.New(db),
		Catalog: cat,
		Log:     logger,
		DevMode: devMode,
	}
}
