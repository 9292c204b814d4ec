// Package indexes creates the MongoDB indexes the service depends on.
package indexes

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Index creation is idempotent: creating an
index that already exists with the same keys and options is a no-op, and an
IndexOptionsConflict (same keys under a different name) is tolerated so a
renamed deployment does not fail to boot.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureUsers(ctx, db, logger)
}

// ensureUsers creates the users collection indexes:
//
//   - unique partial index on auth.email: email is the external identity
//     key, so duplicates are rejected at the store layer rather than
//     assumed away. Partial so legacy documents without an email do not
//     collide on a null key.
//   - non-unique index on missions.name: mission membership counts and
//     per-mission user listings filter on it.
func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	coll := db.Collection("users")

	idxs := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "auth.email", Value: 1}},
			Options: options.Index().
				SetName("uniq_auth_email").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"auth.email": bson.M{"$type": "string"}}),
		},
		{
			Keys:    bson.D{{Key: "missions.name", Value: 1}},
			Options: options.Index().SetName("missions_name"),
		},
	}

	for _, m := range idxs {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				logger.Warn("index exists with conflicting options, keeping existing",
					zap.String("collection", coll.Name()),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			logger.Error("ensure index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.Error(err))
			return err
		}
		logger.Info("ensured index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}
	return nil
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
