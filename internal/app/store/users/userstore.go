package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/Outlyer-Space/quantum/internal/app/system/normalize"
	"github.com/Outlyer-Space/quantum/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the users collection. One document per user; mission
// memberships are embedded sub-documents on the user.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrNotFound is returned when the user, or the requested mission entry
	// on the user, does not exist.
	ErrNotFound = errors.New("user or mission entry not found")

	// ErrDuplicateEmail is returned when an insert collides with the unique
	// auth.email index.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

// GetByEmail loads a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"auth.email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// GetWithMission loads a user by email, requiring that the user carries a
// mission entry with the given name. Returns ErrNotFound otherwise.
func (s *Store) GetWithMission(ctx context.Context, email, mission string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{
		"auth.email":    normalize.Email(email),
		"missions.name": mission,
	}).Decode(&u)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// CountMissionMembers counts users across the whole collection that carry a
// mission entry with the given name. The count is read at call time, not
// maintained as a counter: two concurrent first assignments can both see
// zero. Mission bootstrap is eventually consistent, not linearizable.
func (s *Store) CountMissionMembers(ctx context.Context, mission string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"missions.name": mission})
}

// FindByMission returns every user carrying a mission entry with the given
// name.
func (s *Store) FindByMission(ctx context.Context, mission string) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{"missions.name": mission})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// EnsureByEmail loads the user with the given email, creating the record on
// first contact. New users get a generated auth ID and token and an empty
// mission list.
func (s *Store) EnsureByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalize.Email(email)
	now := time.Now().UTC()

	upd := bson.M{
		"$setOnInsert": bson.M{
			"auth": models.Auth{
				ID:    uuid.NewString(),
				Token: uuid.NewString(),
				Email: email,
			},
			"missions":   []models.Mission{},
			"created_at": now,
		},
		"$set": bson.M{"updated_at": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"auth.email": email}, upd, opts).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			// Lost an upsert race with a concurrent first contact; the
			// winner's document is the one we want.
			return s.GetByEmail(ctx, email)
		}
		return nil, err
	}
	return &u, nil
}

// AppendMission appends a new mission entry to the user's list. The caller
// is responsible for not appending a duplicate mission name.
func (s *Store) AppendMission(ctx context.Context, email string, m models.Mission) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"auth.email": normalize.Email(email)},
		bson.M{
			"$push": bson.M{"missions": m},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetMissionCurrentRole overwrites currentRole on the user's mission entry
// with a single positional update, and returns the updated user. The
// filter requires the mission entry to exist, so there is no window between
// a find and a save for another writer to slip through.
func (s *Store) SetMissionCurrentRole(ctx context.Context, email, mission string, role models.RoleDef) (*models.User, error) {
	return s.updateMissionField(ctx, email, mission, bson.M{"missions.$.currentRole": role})
}

// SetMissionAllowedRoles overwrites allowedRoles wholesale on the user's
// mission entry and returns the updated user.
func (s *Store) SetMissionAllowedRoles(ctx context.Context, email, mission string, roles []models.RoleDef) (*models.User, error) {
	return s.updateMissionField(ctx, email, mission, bson.M{"missions.$.allowedRoles": roles})
}

func (s *Store) updateMissionField(ctx context.Context, email, mission string, set bson.M) (*models.User, error) {
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{
			"auth.email":    normalize.Email(email),
			"missions.name": mission,
		},
		bson.M{"$set": set},
		opts).Decode(&u)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
