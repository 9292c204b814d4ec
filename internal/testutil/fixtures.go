package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Outlyer-Space/quantum/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Role builds a RoleDef.
func Role(name, callsign string) models.RoleDef {
	return models.RoleDef{Name: name, Callsign: callsign}
}

// MissionEntry builds a mission membership entry.
func MissionEntry(name string, current models.RoleDef, allowed ...models.RoleDef) models.Mission {
	return models.Mission{
		Name:         name,
		CurrentRole:  current,
		AllowedRoles: allowed,
	}
}

// CreateUser inserts a user with the given email, display name, and
// mission entries. Returns the created user with its generated IDs.
func (f *Fixtures) CreateUser(ctx context.Context, email, name string, missions ...models.Mission) models.User {
	f.t.Helper()

	if missions == nil {
		missions = []models.Mission{}
	}
	now := time.Now().UTC()
	user := models.User{
		ID: primitive.NewObjectID(),
		Auth: models.Auth{
			ID:    uuid.NewString(),
			Token: uuid.NewString(),
			Email: email,
			Name:  name,
		},
		Missions:  missions,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}
