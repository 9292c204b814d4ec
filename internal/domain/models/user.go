// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth carries the identity fields for a user. All fields are optional
// strings in practice; Email is the de facto external identity key and is
// enforced unique by a partial index on the users collection.
type Auth struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Token string `bson:"token,omitempty" json:"token,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
}

// Mission is one membership entry in a user's mission list. Name is unique
// within the list. AllowedRoles normally contains CurrentRole; violations
// are tolerated and repaired on the next assignment.
type Mission struct {
	Name         string    `bson:"name" json:"name"`
	CurrentRole  RoleDef   `bson:"currentRole" json:"currentRole"`
	AllowedRoles []RoleDef `bson:"allowedRoles" json:"allowedRoles"`
}

// User is the document stored in the users collection. Each user owns an
// independent copy of its mission state; missions are not shared across
// users beyond the mission name string and the catalog role values.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Auth     Auth               `bson:"auth" json:"auth"`
	Missions []Mission          `bson:"missions" json:"missions"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FindMission returns a pointer to the mission entry with the given name,
// or nil if the user has no such entry.
func (u *User) FindMission(name string) *Mission {
	for i := range u.Missions {
		if u.Missions[i].Name == name {
			return &u.Missions[i]
		}
	}
	return nil
}
